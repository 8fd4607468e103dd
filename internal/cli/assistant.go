package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
	"github.com/tartampluch/go-addressbook/internal/engine"
	"github.com/tartampluch/go-addressbook/internal/i18n"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// handler executes one command. The returned string is printed as-is; an
// error is converted by describe.
type handler func(args []string) (string, error)

// Assistant is the interactive command layer around an address book.
type Assistant struct {
	book     *contacts.AddressBook
	planner  *engine.Planner
	tr       *i18n.Translator
	dataFile string
	commands map[string]handler
}

// New wires an Assistant. The book is saved back to dataFile on close.
func New(book *contacts.AddressBook, planner *engine.Planner, tr *i18n.Translator, dataFile string) *Assistant {
	a := &Assistant{
		book:     book,
		planner:  planner,
		tr:       tr,
		dataFile: dataFile,
	}
	a.commands = map[string]handler{
		config.CmdHello:        a.hello,
		config.CmdAdd:          a.addContact,
		config.CmdChange:       a.changeContact,
		config.CmdPhone:        a.showPhone,
		config.CmdAll:          a.showAll,
		config.CmdAddBirthday:  a.addBirthday,
		config.CmdShowBirthday: a.showBirthday,
		config.CmdBirthdays:    a.birthdays,
		config.CmdRemovePhone:  a.removePhone,
		config.CmdDelete:       a.deleteContact,
		config.CmdExportVCard:  a.exportVCard,
		config.CmdImportVCard:  a.importVCard,
		config.CmdExportICal:   a.exportICal,
		config.CmdHelp:         a.help,
	}
	return a
}

// ParseInput splits a line into a lower-cased command word and its arguments.
// An empty line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute runs a single input line and returns the reply to print and whether
// the session should end. It never fails: every error becomes a message.
func (a *Assistant) Execute(ctx context.Context, line string) (string, bool) {
	cmd, args := ParseInput(line)
	if cmd == "" {
		return "", false
	}
	if cmd == config.CmdClose || cmd == config.CmdExit {
		return "", true
	}

	log := slog.With(
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, cmd,
	)

	h, ok := a.commands[cmd]
	if !ok {
		return a.describe(ErrInvalidCommand), false
	}

	reply, err := h(args)
	if err != nil {
		log.DebugContext(ctx, config.MsgCommandFailed, config.LogKeyError, err)
		return a.describe(err), false
	}
	log.DebugContext(ctx, config.MsgCommand, config.LogKeyArgs, len(args))
	return reply, false
}

// Run is the read-eval-print loop. It returns after close/exit or at the end
// of input, having saved the book; unsaved changes are lost on any other exit.
// A cancelled ctx ends the loop before the next prompt without saving.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := a.print(out, a.tr.Msg(config.TKeyWelcome)+"\n"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.print(out, a.tr.Msg(config.TKeyPrompt)); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			slog.InfoContext(ctx, config.MsgInputClosed, config.LogKeyComponent, config.CompCLI)
			if err := a.print(out, "\n"); err != nil {
				return err
			}
			return a.close(out)
		}

		reply, quit := a.Execute(ctx, scanner.Text())
		if quit {
			return a.close(out)
		}
		if reply == "" {
			continue
		}
		if err := a.print(out, reply+"\n"); err != nil {
			return err
		}
	}
}

func (a *Assistant) close(out io.Writer) error {
	if err := storage.Save(a.dataFile, a.book); err != nil {
		return err
	}
	return a.print(out, a.tr.Msg(config.TKeyGoodbye)+"\n")
}

func (a *Assistant) print(out io.Writer, s string) error {
	if _, err := io.WriteString(out, s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// findRecord is the command-level lookup: a miss is an error here.
func (a *Assistant) findRecord(name string) (*contacts.Record, error) {
	rec, ok := a.book.Find(name)
	if !ok {
		return nil, &contacts.NotFoundError{Kind: contacts.ErrContactNotFound, Key: name}
	}
	return rec, nil
}

// need checks the argument count shared by every handler.
func need(args []string, n int) error {
	if len(args) < n {
		return ErrNotEnoughParams
	}
	return nil
}
