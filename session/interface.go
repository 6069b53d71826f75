package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/boardgate/bench"
	"github.com/daystram/boardgate/board"
	"github.com/daystram/boardgate/square"
)

var ErrUnknownCommand = errors.New("unknown command")

type InterfaceOption func(*Interface)

// WithParallelPerft runs perft with the root moves fanned out to goroutines.
func WithParallelPerft(parallel bool) InterfaceOption {
	return func(i *Interface) {
		i.parallelPerft = parallel
	}
}

// Interface drives a Session with line commands read from in, writing one reply per command to out.
type Interface struct {
	session *Session
	in      io.Reader
	out     io.Writer

	parallelPerft bool
}

func NewInterface(s *Session, in io.Reader, out io.Writer, opts ...InterfaceOption) *Interface {
	if s == nil {
		s = New()
	}
	i := &Interface{
		session: s,
		in:      in,
		out:     out,
	}
	for _, f := range opts {
		f(i)
	}
	return i
}

type inputLine struct {
	text string
	err  error
}

// Run reads commands until quit, end of input, or ctx is done. Cancellation interrupts a pending read
// but not a command already running, so a perft started before ctx is done runs to completion.
func (i *Interface) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	go func() {
		reader := bufio.NewReader(i.in)
		for {
			text, err := reader.ReadString('\n')
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line inputLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line = <-lines:
		}
		cmd, err := line.text, line.err
		if err != nil && (!errors.Is(err, io.EOF) || cmd == "") {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		args := strings.Fields(cmd)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "new":
			i.session.Reset()
			i.println("ok")
		case "move":
			i.commandMove(ctx, args[1:])
		case "legal":
			i.commandLegal(ctx, args[1:])
		case "d":
			i.println(i.session.Board().Dump())
		case "draw":
			i.println(i.session.Board().Draw())
		case "history":
			i.println(i.session.Notation())
		case "status":
			i.println(fmt.Sprintf("%s %s", i.session.Turn(), i.session.Status()))
		case "perft":
			i.commandPerft(ctx, args[1:])
		case "quit":
			return nil
		default:
			i.printErr(fmt.Errorf("%w: %s", ErrUnknownCommand, args[0]))
		}
	}
}

func (i *Interface) commandMove(_ context.Context, args []string) {
	if len(args) != 1 {
		i.printErr(fmt.Errorf("%w: usage: move <from><to>[promotion]", square.ErrInvalidNotation))
		return
	}
	from, to, promote, err := ParseMove(args[0])
	if err != nil {
		i.printErr(err)
		return
	}
	mv, err := i.session.Submit(from, to, promote)
	if err != nil {
		i.println("rejected " + err.Error())
		return
	}
	i.println("ok " + mv.UCI())
}

func (i *Interface) commandLegal(_ context.Context, args []string) {
	if len(args) != 1 {
		i.printErr(fmt.Errorf("%w: usage: legal <square>", square.ErrInvalidNotation))
		return
	}
	from, err := square.FromNotation(args[0])
	if err != nil {
		i.printErr(err)
		return
	}
	dsts := i.session.Legal(from)
	notations := make([]string, 0, len(dsts))
	for _, sq := range dsts {
		notations = append(notations, sq.Notation())
	}
	i.println(strings.TrimSpace("ok " + strings.Join(notations, " ")))
}

func (i *Interface) commandPerft(ctx context.Context, args []string) {
	if err := ctx.Err(); err != nil {
		i.printErr(err)
		return
	}
	if len(args) != 1 {
		i.printErr(fmt.Errorf("%w: usage: perft <depth>", bench.ErrInvalidDepth))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		i.printErr(fmt.Errorf("%w: %s", bench.ErrInvalidDepth, args[0]))
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	_, err = bench.Perft(i.session.Board(), i.session.Turn(), depth, i.parallelPerft, true, out)
	close(out)
	<-done
	if err != nil {
		i.printErr(err)
	}
}

// ParseMove reads a move in coordinate notation, e.g. "e2e4" or "e7e8n".
func ParseMove(s string) (from, to square.Square, promote board.PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, board.PieceUnknown, fmt.Errorf("%w: %q", square.ErrInvalidNotation, s)
	}
	if from, err = square.FromNotation(s[0:2]); err != nil {
		return 0, 0, board.PieceUnknown, err
	}
	if to, err = square.FromNotation(s[2:4]); err != nil {
		return 0, 0, board.PieceUnknown, err
	}
	if len(s) == 5 {
		_, promote = board.PieceFromSymbol(unicode.ToUpper(rune(s[4])))
		if promote == board.PieceUnknown {
			return 0, 0, board.PieceUnknown, fmt.Errorf("%w: unknown promotion %q", square.ErrInvalidNotation, s[4:])
		}
	}
	return from, to, promote, nil
}

func (i *Interface) printErr(err error) {
	i.println("error " + err.Error())
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
