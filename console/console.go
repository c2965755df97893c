package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"restaurant-desk/logger"
	"restaurant-desk/metrics"
	"restaurant-desk/services"

	"github.com/charmbracelet/lipgloss"
)

// errQuit ends the program from inside a session (admin log out, customer exit).
var errQuit = errors.New("quit")

// maxLineBytes bounds one answer. Longer lines are dropped and the prompt
// answered with an empty string.
const maxLineBytes = 64 << 10

type inputLine struct {
	text    string
	tooLong bool
}

type styles struct {
	title lipgloss.Style
	err   lipgloss.Style
	ok    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		err:   r.NewStyle().Foreground(lipgloss.Color("#ff453a")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#30d158")),
	}
}

type Options struct {
	OrderCapacity int
	Logger        *logger.Logger
	Metrics       *metrics.Collector
}

// Console is the interactive front end. It reads one answer per line.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	menu    *services.Menu
	admin   *services.Admin
	log     *logger.Logger
	metrics *metrics.Collector
	style   styles

	orderCapacity int

	// set by Run
	lines   chan inputLine
	readErr error
	done    <-chan struct{}
}

func New(in io.Reader, out io.Writer, menu *services.Menu, admin *services.Admin, opts Options) *Console {
	c := &Console{
		in:            bufio.NewReaderSize(in, maxLineBytes),
		out:           out,
		menu:          menu,
		admin:         admin,
		log:           opts.Logger,
		metrics:       opts.Metrics,
		style:         newStyles(out),
		orderCapacity: opts.OrderCapacity,
	}
	if c.log == nil {
		c.log = logger.Discard()
	}
	if c.metrics == nil {
		c.metrics = metrics.NewCollector()
	}
	c.metrics.SetMenuSize(menu.Len())
	return c
}

// Run loops over the top-level menu until the user exits, a session ends
// the program, input runs out or ctx is cancelled. None of these is an error.
// Run must be called at most once.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.done = ctx.Done()
	c.lines = make(chan inputLine)
	go c.readInput(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}
		c.title("Welcome to the Restaurant Management System!")
		c.println("1. Admin Login")
		c.println("2. Customer Login")
		c.println("3. Exit")

		choice, err := c.readChoice()
		if err != nil {
			return endOfSession(err)
		}

		switch choice {
		case 1:
			err = c.adminSession(ctx)
		case 2:
			err = c.customerSession(ctx)
		case 3:
			c.println("Goodbye! Have a great day.")
			return nil
		default:
			c.invalidChoice()
			continue
		}
		if err != nil {
			return endOfSession(err)
		}
	}
}

func endOfSession(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) showMenu() {
	c.title("Menu:")
	if c.menu.Len() == 0 {
		c.println("(empty)")
		return
	}
	for row := range c.menu.Display() {
		c.println(row)
	}
}

// readInput feeds c.lines until input ends or ctx is done. A blocked read on
// a terminal never returns, so prompts wait on ctx as well as on this goroutine.
func (c *Console) readInput(ctx context.Context) {
	defer close(c.lines)
	for {
		line, err := readLine(c.in)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.readErr = err
			}
			return
		}
		select {
		case c.lines <- line:
		case <-ctx.Done():
			return
		}
	}
}

// readLine returns one line without its line ending. A line that does not
// fit the reader's buffer is consumed to its end and reported as tooLong.
func readLine(r *bufio.Reader) (inputLine, error) {
	chunk, isPrefix, err := r.ReadLine()
	if err != nil {
		return inputLine{}, err
	}
	if !isPrefix {
		return inputLine{text: string(chunk)}, nil
	}
	for isPrefix && err == nil {
		_, isPrefix, err = r.ReadLine()
	}
	// a read error here shows up again on the next call
	return inputLine{tooLong: true}, nil
}

// prompt prints label and returns the next input line, trimmed. It returns
// errQuit once Run's context is done and io.EOF when input runs out.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	select {
	case <-c.done:
		return "", errQuit
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", c.readErr
			}
			return "", io.EOF
		}
		if line.tooLong {
			c.fail("Input is too long and was ignored.")
			return "", nil
		}
		return strings.TrimSpace(line.text), nil
	}
}

// promptInt reads a number; ok is false when the line is not an integer.
func (c *Console) promptInt(label string) (n int, ok bool, err error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// readChoice returns -1 for anything that is not a number.
func (c *Console) readChoice() (int, error) {
	n, ok, err := c.promptInt("> ")
	if err != nil {
		return 0, err
	}
	if !ok {
		return -1, nil
	}
	return n, nil
}

func (c *Console) invalidChoice() {
	c.fail("Invalid choice. Please try again.")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) title(s string) {
	fmt.Fprintln(c.out, c.style.title.Render(s))
}

func (c *Console) fail(s string) {
	fmt.Fprintln(c.out, c.style.err.Render(s))
}

func (c *Console) success(s string) {
	fmt.Fprintln(c.out, c.style.ok.Render(s))
}
