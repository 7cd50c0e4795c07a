package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/dotdash/internal/assistant"
	"github.com/wizzomafizzo/dotdash/internal/converter"
	"github.com/wizzomafizzo/dotdash/internal/database"
	"github.com/wizzomafizzo/dotdash/internal/history"
	"github.com/wizzomafizzo/dotdash/internal/prompt"
	"github.com/wizzomafizzo/dotdash/internal/testutil"
)

type firstHint struct{}

func (firstHint) IntN(int) int { return 0 }

type brokenLister struct{}

func (brokenLister) List(context.Context, int) ([]history.Entry, error) {
	return nil, errors.New("database is locked")
}

type brokenPrompter struct {
	prompt.Scripted
}

func (*brokenPrompter) Prompt(string) (string, error) {
	return "", errors.New("terminal gone")
}

func newTestSession(t *testing.T, opts Options, lines ...string) (*Session, *prompt.Scripted, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	prompter := prompt.NewScripted(lines...)
	conv := converter.New(assistant.New(firstHint{}), nil)
	return New(conv, prompter, &out, opts), prompter, &out
}

func TestRunEncodesLinesWithCurrentMode(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	s, prompter, out := newTestSession(t, Options{Mode: converter.ModeMorse}, "SOS", "  ", "quit")

	require.NoError(t, s.Run(ctx))

	assert.Contains(t, out.String(), assistant.ReadyMessage)
	assert.Contains(t, out.String(), "Output: ... --- ...")
	assert.Contains(t, out.String(), assistant.UppercaseMessage)
	assert.Equal(t, "... --- ...", s.LastOutput())
	assert.Equal(t, []string{"SOS", "quit"}, prompter.History, "blank lines are not stored")
	assert.True(t, prompter.Closed)
	assert.Len(t, prompter.Prompts, 3)
	assert.Contains(t, prompter.Prompts[0], "[morse]> ")
}

func TestRunEndsOnEOF(t *testing.T) {
	t.Parallel()

	ctx, getLogs := testutil.NewTestContext(t)
	s, prompter, _ := newTestSession(t, Options{})

	require.NoError(t, s.Run(ctx))
	assert.True(t, prompter.Closed)
	assert.Contains(t, getLogs(), "Session ended by user")
}

func TestRunPrompterFailure(t *testing.T) {
	t.Parallel()

	conv := converter.New(assistant.New(firstHint{}), nil)
	p := &brokenPrompter{}
	s := New(conv, p, &bytes.Buffer{}, Options{})

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
	assert.True(t, p.Closed)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _, _ := newTestSession(t, Options{}, "hello")

	require.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestShiftRoundTripThroughSession(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	s, _, out := newTestSession(t, Options{Key: "1"})

	assert.False(t, s.Handle(ctx, "encode abc"))
	assert.Equal(t, "98 99 100", s.LastOutput())
	assert.Equal(t, assistant.LowercaseMessage, s.Status())

	assert.False(t, s.Handle(ctx, "decode 98 99 100"))
	assert.Equal(t, "abc", s.LastOutput())
	assert.Contains(t, out.String(), "Output: abc")
}

func TestShiftRequiresIntegerKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty key", key: ""},
		{name: "letters", key: "abc"},
		{name: "float", key: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, out := newTestSession(t, Options{Key: tt.key})
			s.Handle(context.Background(), "encode hello")

			assert.Contains(t, out.String(), MsgInvalidKey)
			assert.Empty(t, s.LastOutput())
			assert.Equal(t, assistant.ReadyMessage, s.Status())
		})
	}
}

func TestNegativeKeyAccepted(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestSession(t, Options{Key: "-1"})
	s.Handle(context.Background(), "encode B")

	assert.Equal(t, "65", s.LastOutput())
}

func TestInvalidShiftInput(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{Key: "1"})
	s.Handle(context.Background(), "encode A")
	require.Equal(t, "66", s.LastOutput())

	s.Handle(context.Background(), "decode abc")

	assert.Contains(t, out.String(), MsgInvalidNumeric)
	assert.Empty(t, s.LastOutput())
	assert.Equal(t, assistant.PromptMessage, s.Status())
}

func TestModeCommand(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{})
	ctx := context.Background()

	s.Handle(ctx, "mode")
	assert.Contains(t, out.String(), "Mode: Shift Cipher")

	s.Handle(ctx, "mode Morse Code")
	assert.Equal(t, converter.ModeMorse, s.Mode())

	s.Handle(ctx, "mode rot13")
	assert.Equal(t, converter.ModeMorse, s.Mode())
	assert.Contains(t, out.String(), MsgUnknownEncode)

	s.Handle(ctx, "decode .... .. / - .... . .-. .")
	assert.Equal(t, "HI THERE", s.LastOutput())
}

func TestKeyAndClear(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{})
	ctx := context.Background()

	s.Handle(ctx, "key 5")
	assert.Equal(t, "5", s.Key())
	s.Handle(ctx, "hi")
	assert.Equal(t, "109 110", s.LastOutput())

	s.Handle(ctx, "clear")
	assert.Empty(t, s.Key())
	assert.Empty(t, s.LastOutput())
	assert.Equal(t, assistant.ReadyMessage, s.Status())
	assert.Equal(t, 1, strings.Count(out.String(), assistant.ReadyMessage))
}

func TestCommandWordsTakePriority(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{Mode: converter.ModeMorse})
	ctx := context.Background()

	s.Handle(ctx, "help")
	assert.Contains(t, out.String(), "use 'encode <text>' to encode such a line")

	s.Handle(ctx, "key lime pie")
	assert.Equal(t, "lime pie", s.Key())
	assert.Empty(t, s.LastOutput())

	s.Handle(ctx, "encode key lime pie")
	assert.Equal(t, "-.- . -.-- / .-.. .. -- . / .--. .. .", s.LastOutput())
}

func TestQuitCommands(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestSession(t, Options{})
	assert.True(t, s.Handle(context.Background(), "quit"))
	assert.True(t, s.Handle(context.Background(), "EXIT"))
}

func TestHelpAndTable(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{})
	s.Handle(context.Background(), "help")
	s.Handle(context.Background(), "table")

	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "S  ...")
	assert.Contains(t, out.String(), "0  -----")
}

func TestHistoryDisabled(t *testing.T) {
	t.Parallel()

	s, _, out := newTestSession(t, Options{})
	s.Handle(context.Background(), "history")

	assert.Contains(t, out.String(), "History is disabled")
}

func TestHistoryCommand(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	manager, err := database.NewManager(ctx, database.MemoryDSN)
	require.NoError(t, err)
	defer func() { _ = manager.Close() }()
	store := history.NewStore(manager, 0)

	var out bytes.Buffer
	conv := converter.New(assistant.New(firstHint{}), store)
	s := New(conv, prompt.NewScripted(), &out, Options{Mode: converter.ModeMorse, History: store})

	s.Handle(ctx, "SOS")
	s.Handle(ctx, "HELP")
	s.Handle(ctx, "history 1")

	assert.Contains(t, out.String(), "[1] ")
	assert.Contains(t, out.String(), "Input:  HELP")
	assert.NotContains(t, out.String(), "Input:  SOS")

	s.Handle(ctx, "history x")
	assert.Contains(t, out.String(), "History limit must be a non-negative integer")
}

func TestHistoryListFailure(t *testing.T) {
	t.Parallel()

	ctx, getLogs := testutil.NewTestContext(t)
	s, _, out := newTestSession(t, Options{History: brokenLister{}})

	s.Handle(ctx, "history")

	assert.Contains(t, out.String(), "Could not read history")
	assert.Contains(t, getLogs(), "database is locked")
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	WriteTable(&out)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 11)
	assert.Contains(t, out.String(), "␣  /")
}
