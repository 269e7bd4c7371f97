package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/sabot-dev/sabot/internal/model"
	"golang.org/x/sync/errgroup"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for interactive display. During a test
// run it shows a spinner, a progress bar and a running kill tally; estimation
// and report output fall back to rendered tables.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program for test mode. Estimation mode prints
// static tables and needs no program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	if config.mode != ModeTest {
		return nil
	}

	t.program = tea.NewProgram(
		newRunModel(config.total),
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
	)

	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()
		return err
	})

	return nil
}

// Close shuts the progress program down if it is still running.
func (t *TUI) Close(context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	_ = t.group.Wait()
	t.program = nil
}

// Wait blocks until the progress program has finished rendering.
func (t *TUI) Wait(context.Context) {
	if t.program == nil {
		return
	}

	_ = t.group.Wait()
}

// DisplayEstimation renders the per-type mutation counts as a table.
func (t *TUI) DisplayEstimation(ctx context.Context, mutations []m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s", renderEstimationTable(mutations))

	return err
}

// DisplayStartingMutation feeds the current mutation into the progress view.
func (t *TUI) DisplayStartingMutation(ctx context.Context, index, total int, mutation m.Mutation) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(startMutationMsg{index: index, total: total, mutation: mutation})
}

// DisplayCompletedMutation feeds one evaluated result into the progress view.
func (t *TUI) DisplayCompletedMutation(ctx context.Context, result m.MutationResult) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(completedMutationMsg{result: result})
}

// DisplayReport stops the progress view and prints the final report table.
func (t *TUI) DisplayReport(ctx context.Context, report m.MutationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program != nil {
		t.program.Send(runFinishedMsg{})
		_ = t.group.Wait()
		t.program = nil
	}

	_, err := fmt.Fprint(t.output, renderReportTable(report))

	return err
}

// DisplayMutationScore prints the final mutation score.
func (t *TUI) DisplayMutationScore(ctx context.Context, score float64) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "Mutation score: %s\n", headerStyle.Render(fmt.Sprintf("%.2f%%", score)))
}

// Message types.
type startMutationMsg struct {
	index    int
	total    int
	mutation m.Mutation
}

type completedMutationMsg struct {
	result m.MutationResult
}

type runFinishedMsg struct{}

// runModel is the Bubble Tea model shown while mutations are evaluated.
type runModel struct {
	spinner     spinner.Model
	progressBar progress.Model
	total       int
	completed   int
	killed      int
	survived    int
	current     string
	lastResult  string
	quitting    bool
}

func newRunModel(total int) runModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = headerStyle

	return runModel{
		spinner:     sp,
		progressBar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total:       total,
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case startMutationMsg:
		rm.current = fmt.Sprintf("[%d/%d] %s:%d %s", msg.index, msg.total, msg.mutation.File, msg.mutation.Line, msg.mutation.Description)
		return rm, nil

	case completedMutationMsg:
		rm.completed++

		if msg.result.Killed {
			rm.killed++
			rm.lastResult = killedStyle.Render(fmt.Sprintf("mutation %d killed by %s", msg.result.ID, firstKiller(msg.result)))
		} else {
			rm.survived++
			rm.lastResult = survivedStyle.Render(fmt.Sprintf("mutation %d survived", msg.result.ID))
		}

		if rm.total == 0 {
			return rm, nil
		}

		return rm, rm.progressBar.SetPercent(float64(rm.completed) / float64(rm.total))

	case runFinishedMsg:
		rm.quitting = true
		return rm, tea.Quit

	case progress.FrameMsg:
		updated, cmd := rm.progressBar.Update(msg)
		if pb, ok := updated.(progress.Model); ok {
			rm.progressBar = pb
		}

		return rm, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm runModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("sabot mutation testing"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", rm.spinner.View(), dimStyle.Render(rm.current))
	b.WriteString(rm.progressBar.View())
	fmt.Fprintf(&b, "\n\n%s %s   %s %s\n",
		killedStyle.Render("killed"), fmt.Sprintf("%d", rm.killed),
		survivedStyle.Render("survived"), fmt.Sprintf("%d", rm.survived),
	)

	if rm.lastResult != "" {
		fmt.Fprintf(&b, "%s\n", rm.lastResult)
	}

	return b.String()
}
