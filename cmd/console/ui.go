package main

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

const PlaceHolderText = "Type a command (help for a list)..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	session      *session.Session
	archetypes   []ArchetypeListItem
	cast         map[string]*evolution.Status
	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	lines        []string
	ready        bool
	width        int
	height       int
	loading      bool
}

type statusMsg struct {
	characterID string
	status      *evolution.Status
	err         error
}

type interactionMsg struct {
	characterID string
	result      *evolution.InteractionResult
	err         error
}

type redemptionMsg struct {
	characterID string
	result      *evolution.RedemptionResult
	err         error
}

type characterMsg struct {
	characterID string
	character   *CharacterResponse
	err         error
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	characterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	shadowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("129")) // violet

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, s *session.Session, archetypes []ArchetypeListItem) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	ui := ConsoleUI{
		config:       cfg,
		client:       client,
		session:      s,
		archetypes:   archetypes,
		cast:         make(map[string]*evolution.Status),
		textarea:     ta,
		logViewport:  logVp,
		metaViewport: metaVp,
	}
	ui.appendLine(titleStyle.Render("RPG COMPANION") + "\n")
	ui.appendLine(fmt.Sprintf("Session %s ready. Type 'help' for commands.\n", s.ID.String()[:8]))
	return ui
}

func (m *ConsoleUI) appendLine(line string) {
	m.lines = append(m.lines, line)
}

func (m *ConsoleUI) writeLogContent() {
	width := m.logViewport.Width - 6
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	for _, line := range m.lines {
		content.WriteString(wordwrap.String(line, width) + "\n")
	}
	if m.loading {
		content.WriteString(loadingStyle.Render("...") + "\n")
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")
	content.WriteString("ID:\n" + m.session.ID.String()[:8] + "...\n\n")
	if m.session.Name != "" {
		content.WriteString("Name:\n" + m.session.Name + "\n\n")
	}

	content.WriteString("Cast:\n")
	if len(m.cast) == 0 {
		content.WriteString("None yet\n")
	} else {
		ids := make([]string, 0, len(m.cast))
		for id := range m.cast {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			st := m.cast[id]
			content.WriteString(fmt.Sprintf("• %s — %s %s (%.0f)\n", id, st.CurrentForm, st.Icon, st.Points))
		}
	}

	content.WriteString("\nCommands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• help: Help\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m.dispatch(input)
		}

	case statusMsg:
		m.loading = false
		if msg.err != nil {
			m.appendLine(errorStyle.Render("Error: " + msg.err.Error()))
		} else {
			m.cast[msg.characterID] = msg.status
			m.appendLine(resultStyle.Render(fmt.Sprintf("%s is now %s %s.",
				msg.characterID, msg.status.CurrentForm, msg.status.Icon)))
		}

	case interactionMsg:
		m.loading = false
		if msg.err != nil {
			m.appendLine(errorStyle.Render("Error: " + msg.err.Error()))
		} else if !msg.result.Success {
			m.appendLine(errorStyle.Render("Rejected: " + msg.result.Error))
		} else {
			m.renderInteraction(msg.characterID, msg.result)
			if st, ok := m.cast[msg.characterID]; ok {
				st.Points = msg.result.Points
				st.Progress = msg.result.Progress
				if msg.result.Transition != nil {
					st.CurrentForm = msg.result.Transition.Name
				}
			}
		}

	case redemptionMsg:
		m.loading = false
		if msg.err != nil {
			m.appendLine(errorStyle.Render("Error: " + msg.err.Error()))
		} else if !msg.result.Success {
			m.appendLine(errorStyle.Render("Redemption refused: " + msg.result.Error))
		} else {
			m.appendLine(resultStyle.Render(fmt.Sprintf("%s steps back into the light (%.0f points, %s).",
				msg.characterID, msg.result.Points, msg.result.State)))
			m.writeLogContent()
			m.writeMetadata()
			return m, m.doGetCharacter(msg.characterID)
		}

	case characterMsg:
		m.loading = false
		if msg.err != nil {
			m.appendLine(errorStyle.Render("Error: " + msg.err.Error()))
		} else {
			m.renderCharacter(msg.characterID, msg.character)
			m.cast[msg.characterID] = msg.character.Status
		}
	}

	m.writeLogContent()
	m.writeMetadata()

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *ConsoleUI) layout() {
	metaWidth := 28
	logWidth := m.width - metaWidth
	if logWidth < 40 {
		logWidth = m.width
		metaWidth = 0
	}

	inputHeight := 3
	panelHeight := m.height - inputHeight - 2

	m.logViewport.Width = logWidth
	m.logViewport.Height = panelHeight
	m.metaViewport.Width = metaWidth
	m.metaViewport.Height = panelHeight
	m.textarea.SetWidth(m.width - 4)
}

// dispatch parses a command line and returns the resulting tea.Cmd.
func (m ConsoleUI) dispatch(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	m.appendLine(promptStyle.Render("> " + input))

	var next tea.Cmd
	switch cmd {
	case "help":
		m.appendLine(helpText())

	case "archetypes":
		for _, a := range m.archetypes {
			m.appendLine(fmt.Sprintf("%s %s (%s) — %s", a.Icon, a.ID, a.Category, a.Summary))
		}

	case "set":
		if len(args) != 2 {
			m.appendLine(errorStyle.Render("Usage: set <character> <archetype>"))
			break
		}
		m.loading = true
		next = m.doSetArchetype(args[0], args[1])

	case "interact":
		if len(args) < 2 {
			m.appendLine(errorStyle.Render("Usage: interact <character> <type> [modifier] [context...]"))
			break
		}
		req := InteractionRequest{Type: strings.ToLower(args[1])}
		rest := args[2:]
		if len(rest) > 0 {
			if mod, err := strconv.ParseFloat(rest[0], 64); err == nil {
				req.Modifier = &mod
				rest = rest[1:]
			}
		}
		req.Context = strings.Join(rest, " ")
		m.loading = true
		next = m.doInteraction(args[0], req)

	case "status":
		if len(args) != 1 {
			m.appendLine(errorStyle.Render("Usage: status <character>"))
			break
		}
		m.loading = true
		next = m.doGetCharacter(args[0])

	case "redeem":
		if len(args) != 1 {
			m.appendLine(errorStyle.Render("Usage: redeem <character>"))
			break
		}
		m.loading = true
		next = m.doRedemption(args[0])

	case "quit", "exit":
		return m, tea.Quit

	default:
		m.appendLine(errorStyle.Render("Unknown command: " + cmd + " (try 'help')"))
	}

	m.writeLogContent()
	m.writeMetadata()
	return m, next
}

func helpText() string {
	return strings.Join([]string{
		"Commands:",
		"  archetypes                                  List the archetype catalog",
		"  set <character> <archetype>                 Assign an archetype",
		"  interact <character> <type> [mod] [ctx...]  Record an interaction",
		"  status <character>                          Show character status",
		"  redeem <character>                          Attempt redemption",
		"  quit                                        Exit",
	}, "\n")
}

func (m *ConsoleUI) renderInteraction(characterID string, r *evolution.InteractionResult) {
	sign := "+"
	if r.Impact < 0 {
		sign = ""
	}
	m.appendLine(resultStyle.Render(fmt.Sprintf("%s: %s (%s%.1f) → %.1f points",
		characterID, r.Interaction.Type, sign, r.Impact, r.Points)))

	if r.Transition != nil {
		switch r.Transition.Type {
		case evolution.TransitionEvolution:
			m.appendLine(titleStyle.Render(fmt.Sprintf("✨ %s has evolved into %s!", characterID, r.Transition.Name)))
		case evolution.TransitionDevolution:
			m.appendLine(shadowStyle.Render(fmt.Sprintf("🌑 %s has fallen into shadow: %s", characterID, r.Transition.Name)))
		}
	}
}

func (m *ConsoleUI) renderCharacter(characterID string, c *CharacterResponse) {
	st := c.Status
	m.appendLine(characterStyle.Render(characterID) +
		fmt.Sprintf(" — %s %s [%s], %.1f points (progress %.2f)",
			st.CurrentForm, st.Icon, st.State, st.Points, st.Progress))

	if c.Stats != nil && c.Stats.Total > 0 {
		m.appendLine(fmt.Sprintf("Interactions: %d total, %d positive, %d negative, net %.1f",
			c.Stats.Total, c.Stats.Positive, c.Stats.Negative, c.Stats.NetImpact))
	}
	for _, mod := range c.PromptModifiers {
		m.appendLine("• " + mod)
	}
}

func (m ConsoleUI) doSetArchetype(characterID, archetypeID string) tea.Cmd {
	return func() tea.Msg {
		status, err := setArchetype(m.client, m.config.APIBaseURL, m.session.ID, characterID, strings.ToUpper(archetypeID))
		return statusMsg{characterID: characterID, status: status, err: err}
	}
}

func (m ConsoleUI) doInteraction(characterID string, req InteractionRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := recordInteraction(m.client, m.config.APIBaseURL, m.session.ID, characterID, req)
		return interactionMsg{characterID: characterID, result: result, err: err}
	}
}

func (m ConsoleUI) doRedemption(characterID string) tea.Cmd {
	return func() tea.Msg {
		result, err := attemptRedemption(m.client, m.config.APIBaseURL, m.session.ID, characterID)
		return redemptionMsg{characterID: characterID, result: result, err: err}
	}
}

func (m ConsoleUI) doGetCharacter(characterID string) tea.Cmd {
	return func() tea.Msg {
		character, err := getCharacter(m.client, m.config.APIBaseURL, m.session.ID, characterID)
		return characterMsg{characterID: characterID, character: character, err: err}
	}
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Initializing..."
	}

	log := logPanelStyle.Render(m.logViewport.View())
	var body string
	if m.metaViewport.Width > 0 {
		meta := metaPanelStyle.Render(m.metaViewport.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, log, meta)
	} else {
		body = log
	}

	sep := separatorStyle.Render(strings.Repeat("─", m.width))
	return body + "\n" + sep + "\n" + m.textarea.View()
}
