// Package tui implements the interactive advancement wizard on top of the
// advancement and character services. The model is a thin projection of the
// session state machine: every transition goes through the orchestrator, and
// the view renders whatever step the session reports.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/orchestrators/advancement"
	"github.com/duskmantle/advancement-api/internal/orchestrators/character"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
)

// Config holds the dependencies for the wizard
type Config struct {
	AdvancementService advancement.Service
	CharacterService   character.Service
	CharacterID        string
	Mode               advancementsession.Mode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.AdvancementService == nil {
		vb.RequiredField("AdvancementService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CharacterID == "" {
		vb.RequiredField("CharacterID")
	}
	if c.Mode == "" {
		vb.RequiredField("Mode")
	}

	return vb.Build()
}

var studyTypeChoices = []struct {
	Type  advancement.StudyType
	Label string
}{
	{advancement.StudyTeacher, "Study a skill with a teacher"},
	{advancement.StudyMagic, "Learn a new spell"},
	{advancement.StudyNewSchool, "Learn a new school of magic"},
}

// Model is the bubbletea model for the advancement wizard
type Model struct {
	advancementService advancement.Service
	characterService   character.Service
	characterID        string
	mode               advancementsession.Mode

	session   *advancementsession.Session
	char      *drakar.CharacterData
	skills    []character.ResolvedSkill
	abilities []drakar.AbilityDefinition
	spells    []drakar.SpellDefinition
	schools   []drakar.SchoolDefinition

	marksInput textinput.Model
	cursor     int
	lastEntry  *advancementsession.RollEntry

	// notice is a recoverable error shown inline; err aborts the wizard
	notice  string
	err     error
	loading bool
	done    bool

	width  int
	height int
}

// New creates the wizard model
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "number of marks"
	ti.CharLimit = 2
	ti.Width = 20

	return &Model{
		advancementService: cfg.AdvancementService,
		characterService:   cfg.CharacterService,
		characterID:        cfg.CharacterID,
		mode:               cfg.Mode,
		marksInput:         ti,
		loading:            true,
	}, nil
}

// Run starts the wizard and blocks until it exits
func Run(cfg *Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "wizard terminated")
	}
	return nil
}

// Messages carried back from service calls

type sessionMsg struct {
	session *advancementsession.Session
}

type skillsMsg struct {
	character *drakar.CharacterData
	skills    []character.ResolvedSkill
}

type rolledMsg struct {
	session *advancementsession.Session
	entry   *advancementsession.RollEntry
}

type abilitiesMsg struct {
	abilities []drakar.AbilityDefinition
}

type spellsMsg struct {
	spells []drakar.SpellDefinition
}

type schoolsMsg struct {
	schools []drakar.SchoolDefinition
}

type finishedMsg struct {
	character *drakar.CharacterData
}

// noticeMsg is a rejected action the player can correct; fatalMsg ends the
// wizard.
type noticeMsg struct {
	err error
}

type fatalMsg struct {
	err error
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startSession(), m.loadSkills())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.err != nil {
			return m, tea.Quit
		}
		if m.loading || m.session == nil {
			return m, nil
		}
		return m.handleKey(msg)

	case sessionMsg:
		m.session = msg.session
		m.loading = false
		m.notice = ""
		return m, m.stepCmd()

	case rolledMsg:
		m.session = msg.session
		m.lastEntry = msg.entry
		m.loading = false
		m.notice = ""
		return m, m.stepCmd()

	case skillsMsg:
		m.char = msg.character
		m.skills = msg.skills
		return m, nil

	case abilitiesMsg:
		m.abilities = msg.abilities
		m.cursor = 0
		return m, nil

	case spellsMsg:
		m.spells = msg.spells
		m.cursor = 0
		return m, nil

	case schoolsMsg:
		m.schools = msg.schools
		m.cursor = 0
		return m, nil

	case finishedMsg:
		m.char = msg.character
		m.done = true
		return m, tea.Quit

	case noticeMsg:
		m.notice = msg.err.Error()
		m.loading = false
		return m, nil

	case fatalMsg:
		m.err = msg.err
		m.loading = false
		return m, nil
	}

	if m.session != nil && m.session.Step == advancementsession.StepEnterMarks {
		var cmd tea.Cmd
		m.marksInput, cmd = m.marksInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// stepCmd loads whatever the freshly entered step needs
func (m *Model) stepCmd() tea.Cmd {
	switch m.session.Step {
	case advancementsession.StepEnterMarks:
		m.marksInput.Focus()
		return textinput.Blink
	case advancementsession.StepSelectSkills,
		advancementsession.StepStudyTeacherSelectSkill:
		m.cursor = 0
		return m.loadSkills()
	case advancementsession.StepSelectAbility:
		return m.loadAbilities()
	case advancementsession.StepStudyMagicSelectSpell:
		return m.loadSpells()
	case advancementsession.StepStudyMagicSelectSchool:
		return m.loadSchools()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return m, tea.Quit
	}

	switch m.session.Step {
	case advancementsession.StepEnterMarks:
		if key == "enter" {
			marks, err := strconv.Atoi(strings.TrimSpace(m.marksInput.Value()))
			if err != nil || marks <= 0 {
				m.notice = "enter a positive number of marks"
				return m, nil
			}
			m.loading = true
			return m, m.submitMarks(int32(marks))
		}
		var cmd tea.Cmd
		m.marksInput, cmd = m.marksInput.Update(msg)
		return m, cmd

	case advancementsession.StepSelectSkills:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(m.skills))
		case "down", "j":
			m.moveCursor(1, len(m.skills))
		case " ":
			if len(m.skills) > 0 {
				return m, m.toggleSkill(m.skills[m.cursor].Name)
			}
		case "enter":
			m.loading = true
			return m, m.confirmSelection()
		}

	case advancementsession.StepRollSkills:
		entry := m.session.CurrentEntry()
		if entry == nil || entry.Status.Processed() {
			if key == "enter" || key == "n" {
				m.loading = true
				return m, m.advanceToNext()
			}
			return m, nil
		}
		switch key {
		case "enter", "r":
			m.loading = true
			return m, m.rollCurrent(false)
		case "m":
			m.loading = true
			return m, m.rollCurrent(true)
		}

	case advancementsession.StepSelectAbility:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(m.abilities))
		case "down", "j":
			m.moveCursor(1, len(m.abilities))
		case "enter":
			if len(m.abilities) > 0 {
				m.loading = true
				return m, m.selectAbility(m.abilities[m.cursor].Name)
			}
		}

	case advancementsession.StepSelectStudyType:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(studyTypeChoices))
		case "down", "j":
			m.moveCursor(1, len(studyTypeChoices))
		case "enter":
			m.loading = true
			return m, m.chooseStudyType(studyTypeChoices[m.cursor].Type)
		}

	case advancementsession.StepStudyTeacherSelectSkill:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(m.skills))
		case "down", "j":
			m.moveCursor(1, len(m.skills))
		case "enter":
			if len(m.skills) > 0 {
				m.loading = true
				return m, m.selectStudySkill(m.skills[m.cursor].Name)
			}
		}

	case advancementsession.StepStudyTeacherRollSkill:
		switch key {
		case "enter", "r":
			m.loading = true
			return m, m.rollStudy(false)
		case "m":
			m.loading = true
			return m, m.rollStudy(true)
		}

	case advancementsession.StepStudyMagicSelectSpell:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(m.spells))
		case "down", "j":
			m.moveCursor(1, len(m.spells))
		case "enter":
			if len(m.spells) > 0 {
				m.loading = true
				return m, m.learnSpell(m.spells[m.cursor].Name)
			}
		}

	case advancementsession.StepStudyMagicSelectSchool:
		switch key {
		case "up", "k":
			m.moveCursor(-1, len(m.schools))
		case "down", "j":
			m.moveCursor(1, len(m.schools))
		case "enter":
			if len(m.schools) > 0 {
				m.loading = true
				return m, m.beginSchoolStudy(m.schools[m.cursor].ID)
			}
		}

	case advancementsession.StepStudyMagicRollSchool:
		switch key {
		case "enter", "r":
			m.loading = true
			return m, m.rollSchool(false)
		case "m":
			m.loading = true
			return m, m.rollSchool(true)
		}

	case advancementsession.StepFinished:
		if key == "enter" || key == "q" {
			m.loading = true
			return m, m.finishSession()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta, length int) {
	if length == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= length {
		m.cursor = length - 1
	}
}

// Service commands

func (m *Model) startSession() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.StartSession(context.Background(), &advancement.StartSessionInput{
			CharacterID: m.characterID,
			Mode:        m.mode,
		})
		if err != nil {
			return fatalMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) loadSkills() tea.Cmd {
	return func() tea.Msg {
		output, err := m.characterService.ListSkills(context.Background(), &character.ListSkillsInput{
			CharacterID: m.characterID,
		})
		if err != nil {
			return fatalMsg{err}
		}
		return skillsMsg{character: output.Character, skills: output.Skills}
	}
}

func (m *Model) submitMarks(marks int32) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.SubmitMarks(context.Background(), &advancement.SubmitMarksInput{
			SessionID: m.session.ID,
			Marks:     marks,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) toggleSkill(skill string) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ToggleSkill(context.Background(), &advancement.ToggleSkillInput{
			SessionID: m.session.ID,
			Skill:     skill,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) confirmSelection() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ConfirmSelection(context.Background(), &advancement.ConfirmSelectionInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) rollCurrent(manual bool) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.RollCurrentSkill(context.Background(), &advancement.RollCurrentSkillInput{
			SessionID: m.session.ID,
			Manual:    manual,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return rolledMsg{session: output.Session, entry: output.Entry}
	}
}

func (m *Model) advanceToNext() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.AdvanceToNextSkill(context.Background(), &advancement.AdvanceToNextSkillInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) loadAbilities() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ListEligibleAbilities(context.Background(), &advancement.ListEligibleAbilitiesInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return fatalMsg{err}
		}
		return abilitiesMsg{output.Abilities}
	}
}

func (m *Model) selectAbility(name string) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.SelectAbility(context.Background(), &advancement.SelectAbilityInput{
			SessionID: m.session.ID,
			Ability:   name,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) chooseStudyType(studyType advancement.StudyType) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ChooseStudyType(context.Background(), &advancement.ChooseStudyTypeInput{
			SessionID: m.session.ID,
			StudyType: studyType,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) selectStudySkill(skill string) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.SelectStudySkill(context.Background(), &advancement.SelectStudySkillInput{
			SessionID: m.session.ID,
			Skill:     skill,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) rollStudy(manual bool) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.RollStudySkill(context.Background(), &advancement.RollStudySkillInput{
			SessionID: m.session.ID,
			Manual:    manual,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return rolledMsg{session: output.Session, entry: output.Entry}
	}
}

func (m *Model) loadSpells() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ListLearnableSpells(context.Background(), &advancement.ListLearnableSpellsInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return fatalMsg{err}
		}
		return spellsMsg{output.Spells}
	}
}

func (m *Model) learnSpell(name string) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.LearnSpell(context.Background(), &advancement.LearnSpellInput{
			SessionID: m.session.ID,
			Spell:     name,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) loadSchools() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.ListSchools(context.Background(), &advancement.ListSchoolsInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return fatalMsg{err}
		}
		return schoolsMsg{output.Schools}
	}
}

func (m *Model) beginSchoolStudy(schoolID string) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.BeginSchoolStudy(context.Background(), &advancement.BeginSchoolStudyInput{
			SessionID: m.session.ID,
			SchoolID:  schoolID,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return sessionMsg{output.Session}
	}
}

func (m *Model) rollSchool(manual bool) tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.RollSchoolSkill(context.Background(), &advancement.RollSchoolSkillInput{
			SessionID: m.session.ID,
			Manual:    manual,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return rolledMsg{session: output.Session, entry: output.Entry}
	}
}

func (m *Model) finishSession() tea.Cmd {
	return func() tea.Msg {
		output, err := m.advancementService.FinishSession(context.Background(), &advancement.FinishSessionInput{
			SessionID: m.session.ID,
		})
		if err != nil {
			return noticeMsg{err}
		}
		return finishedMsg{output.Character}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.err != nil {
		return "\n" + badStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			helpStyle.Render("press any key to quit") + "\n"
	}
	if m.done {
		return ""
	}
	if m.loading || m.session == nil {
		return "\n  " + mutedStyle.Render("working...") + "\n"
	}

	var body string
	var help string

	switch m.session.Step {
	case advancementsession.StepEnterMarks:
		body = headingStyle.Render("How many advancement marks did you earn?") +
			"\n\n" + m.marksInput.View()
		help = "enter: submit · esc: quit"

	case advancementsession.StepSelectSkills:
		body = m.viewSkillSelection()
		help = "↑/↓: move · space: toggle · enter: confirm · esc: quit"

	case advancementsession.StepRollSkills:
		body = m.viewRollQueue()
		entry := m.session.CurrentEntry()
		if entry != nil && !entry.Status.Processed() {
			help = "enter: roll · m: advance without rolling · esc: quit"
		} else {
			help = "enter: continue · esc: quit"
		}

	case advancementsession.StepSelectAbility:
		body = m.viewAbilitySelection()
		help = "↑/↓: move · enter: take ability · esc: quit"

	case advancementsession.StepSelectStudyType:
		body = m.viewStudyTypeSelection()
		help = "↑/↓: move · enter: choose · esc: quit"

	case advancementsession.StepStudyTeacherSelectSkill:
		body = m.viewStudySkillSelection()
		help = "↑/↓: move · enter: commit to study · esc: quit"

	case advancementsession.StepStudyTeacherRollSkill:
		body = m.viewStudyRoll("Study complete. Roll to see if the training paid off.")
		help = "enter: roll · m: advance without rolling · esc: quit"

	case advancementsession.StepStudyMagicSelectSpell:
		body = m.viewSpellSelection()
		help = "↑/↓: move · enter: learn spell · esc: quit"

	case advancementsession.StepStudyMagicSelectSchool:
		body = m.viewSchoolSelection()
		help = "↑/↓: move · enter: study school · esc: quit"

	case advancementsession.StepStudyMagicRollSchool:
		body = m.viewStudyRoll("Roll against INT to grasp the school's secrets.")
		help = "enter: roll · m: learn without rolling · esc: quit"

	case advancementsession.StepFinished:
		body = m.viewSummary()
		help = "enter: close"

	default:
		body = mutedStyle.Render(fmt.Sprintf("step %s", m.session.Step))
	}

	s := m.viewHeader() + "\n" + panelStyle.Render(body)
	if m.notice != "" {
		s += "\n" + badStyle.Render(m.notice)
	}
	return "\n" + s + "\n\n" + helpStyle.Render(help) + "\n"
}

func (m *Model) viewHeader() string {
	name := m.characterID
	detail := ""
	if m.char != nil {
		name = m.char.Name
		detail = mutedStyle.Render(fmt.Sprintf("  %s %s", m.char.Kin, m.char.Profession))
	}
	mode := "End of Session"
	if m.session.Mode == advancementsession.ModeStudy {
		mode = "Study"
	}
	return titleStyle.Render("Advancement: "+name) + detail +
		mutedStyle.Render("  ("+mode+")")
}

func (m *Model) viewSkillSelection() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n",
		headingStyle.Render("Select skills to advance"),
		mutedStyle.Render(fmt.Sprintf("%d of %d chosen",
			len(m.session.SelectedSkills), m.session.Marks)))

	for i, skill := range m.skills {
		selected := false
		for _, name := range m.session.SelectedSkills {
			if name == skill.Name {
				selected = true
				break
			}
		}
		b.WriteString(m.skillRow(i, skill, selected, true))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewStudySkillSelection() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Which skill will you study?") + "\n\n")
	for i, skill := range m.skills {
		b.WriteString(m.skillRow(i, skill, false, false))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) skillRow(i int, skill character.ResolvedSkill, selected, checkbox bool) string {
	marker := "  "
	if i == m.cursor {
		marker = selectedStyle.Render("> ")
	}
	check := ""
	if checkbox {
		check = "[ ] "
		if selected {
			check = goodStyle.Render("[x] ")
		}
	}
	level := fmt.Sprintf("%2d", skill.Level)
	if skill.Level >= drakar.MaxSkillLevel {
		level = capStyle.Render(level)
	}
	tags := ""
	if skill.Marked {
		tags += " " + goodStyle.Render("marked")
	}
	if skill.Trained {
		tags += " " + mutedStyle.Render("trained")
	}
	row := fmt.Sprintf("%s%s%-18s %s (%s)%s\n",
		marker, check, skill.Name, level, skill.Attribute, tags)
	if i == m.cursor {
		return selectedStyle.Render(strings.TrimRight(row, "\n")) + "\n"
	}
	return row
}

func (m *Model) viewRollQueue() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headingStyle.Render(fmt.Sprintf(
		"Rolling advancement (%d/%d)", m.session.Cursor+1, len(m.session.Queue))))

	for i, entry := range m.session.Queue {
		marker := "  "
		if int32(i) == m.session.Cursor {
			marker = selectedStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-18s", marker, entry.Skill)
		switch entry.Status {
		case advancementsession.RollSucceeded:
			line += goodStyle.Render(entry.Outcome)
		case advancementsession.RollFailed:
			line += badStyle.Render(entry.Outcome)
		case advancementsession.RollSkipped:
			line += mutedStyle.Render(entry.Outcome)
		default:
			line += mutedStyle.Render("waiting on a roll")
		}
		b.WriteString(line + "\n")
	}

	entry := m.session.CurrentEntry()
	if entry != nil && !entry.Status.Processed() {
		fmt.Fprintf(&b, "\nRoll above %d on a d20 to advance %s.",
			entry.Target, entry.Skill)
	}
	return b.String()
}

func (m *Model) viewAbilitySelection() string {
	var b strings.Builder
	b.WriteString(capStyle.Render("A skill reached its maximum!") + "\n" +
		headingStyle.Render("Choose a heroic ability") + "\n\n")
	if len(m.abilities) == 0 {
		b.WriteString(mutedStyle.Render("no eligible abilities"))
		return b.String()
	}
	for i, ability := range m.abilities {
		marker := "  "
		name := ability.Name
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s\n    %s\n", marker, name,
			mutedStyle.Render(ability.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewStudyTypeSelection() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("How will you spend your downtime?") + "\n\n")
	for i, choice := range studyTypeChoices {
		marker := "  "
		label := choice.Label
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s%s\n", marker, label)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewStudyRoll(prompt string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(prompt) + "\n\n")
	if entry := m.session.StudyEntry; entry != nil {
		if entry.Status.Processed() {
			style := badStyle
			if entry.Status == advancementsession.RollSucceeded {
				style = goodStyle
			}
			fmt.Fprintf(&b, "%-18s%s", entry.Skill, style.Render(entry.Outcome))
		} else {
			fmt.Fprintf(&b, "%-18sroll above %d on a d20", entry.Skill, entry.Target)
		}
	}
	return b.String()
}

func (m *Model) viewSpellSelection() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Choose a spell to learn") + "\n\n")
	if len(m.spells) == 0 {
		b.WriteString(mutedStyle.Render("no learnable spells"))
		return b.String()
	}
	for i, spell := range m.spells {
		marker := "  "
		name := spell.Name
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		origin := "general magic"
		if spell.SchoolID != "" {
			origin = "school spell"
		}
		fmt.Fprintf(&b, "%s%-22srank %d  %s\n", marker, name, spell.Rank,
			mutedStyle.Render(origin))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewSchoolSelection() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Choose a school to study") + "\n\n")
	if len(m.schools) == 0 {
		b.WriteString(mutedStyle.Render("no schools left to learn"))
		return b.String()
	}
	for i, school := range m.schools {
		marker := "  "
		name := school.Name
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s\n    %s\n", marker, name,
			mutedStyle.Render(school.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewSummary() string {
	var b strings.Builder
	b.WriteString(goodStyle.Render("Advancement complete") + "\n\n")
	for _, entry := range m.session.Queue {
		style := mutedStyle
		switch entry.Status {
		case advancementsession.RollSucceeded:
			style = goodStyle
		case advancementsession.RollFailed:
			style = badStyle
		}
		fmt.Fprintf(&b, "  %-18s%s\n", entry.Skill, style.Render(entry.Outcome))
	}
	if entry := m.session.StudyEntry; entry != nil && entry.Status.Processed() {
		style := badStyle
		if entry.Status == advancementsession.RollSucceeded {
			style = goodStyle
		}
		fmt.Fprintf(&b, "  %-18s%s\n", entry.Skill, style.Render(entry.Outcome))
	}
	b.WriteString("\n" + mutedStyle.Render("press enter to close"))
	return b.String()
}

var _ tea.Model = (*Model)(nil)
