package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hollowoak/manor-engine/pkg/state"
)

const PlaceHolderText = "What do you do?"

var (
	transcriptPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingBottom(1).
				PaddingLeft(3).
				PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("130")). // burnt orange
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // salmon

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)
)

// transcriptEntry is one exchange: what the player typed and what came
// back. Kept raw so the transcript can reflow on resize.
type transcriptEntry struct {
	input         string
	message       string
	failed        bool
	notifications []string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config    *ConsoleConfig
	client    *http.Client
	gameState *state.GameState

	transcript []transcriptEntry
	intro      string

	transcriptViewport viewport.Model
	metaViewport       viewport.Model
	input              textinput.Model

	ready   bool
	width   int
	height  int
	err     error
	loading bool
	copied  bool
}

type commandResultMsg struct {
	response *commandResponse
	err      error
}

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, gs *state.GameState) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Focus()
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 200

	transcriptVp := viewport.New(50, 20)
	transcriptVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:             cfg,
		client:             client,
		gameState:          gs,
		transcriptViewport: transcriptVp,
		metaViewport:       metaVp,
		input:              ti,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.sendCommand("look"))
}

// sendCommand runs one command against the API off the UI goroutine.
func (m ConsoleUI) sendCommand(text string) tea.Cmd {
	sessionID := m.gameState.ID
	return func() tea.Msg {
		resp, err := sendCommand(m.client, m.config.APIBaseURL, sessionID, text)
		return commandResultMsg{response: resp, err: err}
	}
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.transcriptViewport, vpCmd = m.transcriptViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		transcriptWidth := int(float64(m.width)*0.72) - 4
		metaWidth := m.width - transcriptWidth - 6

		m.transcriptViewport.Width = transcriptWidth - 2
		m.transcriptViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.input.Width = transcriptWidth - 6

		m.ready = true
		m.writeTranscript()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			// Copy the session ID so a player can resume later.
			if err := clipboard.WriteAll(m.gameState.ID.String()); err == nil {
				m.copied = true
				m.writeMetadata()
			}
			return m, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.loading {
				return m, nil
			}
			m.input.Reset()
			m.err = nil
			m.loading = true
			m.transcript = append(m.transcript, transcriptEntry{input: text})
			m.writeTranscript()
			return m, m.sendCommand(text)
		}

	case commandResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.writeTranscript()
			return m, nil
		}
		m.gameState = msg.response.State
		result := msg.response.Result
		if len(m.transcript) == 0 {
			// The opening "look" seeds the intro text.
			m.intro = result.Message
		} else {
			last := &m.transcript[len(m.transcript)-1]
			last.message = result.Message
			last.failed = !result.Success
			last.notifications = result.Notifications
			if result.Won {
				last.notifications = append(last.notifications,
					"You have won. The manor releases you... for now.")
			}
		}
		m.writeTranscript()
		m.writeMetadata()
	}

	m.input, tiCmd = m.input.Update(msg)
	m.transcriptViewport, vpCmd = m.transcriptViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) writeTranscript() {
	width := m.transcriptViewport.Width - 6
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("HOLLOW OAK MANOR") + "\n\n")
	if m.intro != "" {
		content.WriteString(wordwrap.String(m.intro, width) + "\n\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, entry := range m.transcript {
		content.WriteString(userStyle.Render("> "+entry.input) + "\n")
		if entry.message != "" {
			style := roomStyle
			if entry.failed {
				style = failStyle
			}
			content.WriteString(style.Render(wordwrap.String(entry.message, width)) + "\n")
		}
		for _, note := range entry.notifications {
			content.WriteString(noteStyle.Render(wordwrap.String(note, width)) + "\n")
		}
		content.WriteString("\n")
	}

	if m.loading {
		content.WriteString(promptStyle.Render("...") + "\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render(wordwrap.String(m.err.Error(), width)) + "\n")
	}

	m.transcriptViewport.SetContent(content.String())
	m.transcriptViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() {
	gs := m.gameState
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Session ID:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n")
	if m.copied {
		content.WriteString(noteStyle.Render("copied!") + "\n")
	}
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Room: %s\n", gs.Room))
	content.WriteString(fmt.Sprintf("Turn: %d\n", gs.Turns))
	content.WriteString(fmt.Sprintf("Sanity: %d/100\n", gs.Sanity))

	lamp := fmt.Sprintf("Lamp: %d", gs.LampFuel)
	if gs.LampLit {
		lamp += " (lit)"
	}
	content.WriteString(lamp + "\n")

	content.WriteString(fmt.Sprintf("Score: %d\n", gs.Score))
	if gs.Won {
		content.WriteString(wonStyle.Render("VICTORY") + "\n")
	}
	content.WriteString("\n")

	content.WriteString("Carrying:\n")
	if len(gs.Inventory) == 0 {
		content.WriteString("nothing\n")
	} else {
		for _, key := range gs.Inventory {
			content.WriteString("• " + key + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Keys:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+Y: Copy session ID\n")
	content.WriteString("• Enter: Act\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	transcript := transcriptPanelStyle.Render(
		m.transcriptViewport.View() + "\n\n" + m.input.View())
	meta := metaPanelStyle.Render(m.metaViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, transcript, meta)
}
