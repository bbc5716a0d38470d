package cli

import (
	"bst/bst"
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"
)

// quitKey ends the session when entered on its own.
const quitKey = -1

var errUsage = errors.New("bad arguments")

type Options struct {
	NoColor bool // print plain text
	Diff    bool // print a diff of the traversal after every deletion
}

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *bst.Tree
	visualizer *bst.Visualizer
	log        *zap.SugaredLogger
	opts       Options
	sep        *color.Color
	dmp        *diffmatchpatch.DiffMatchPatch
}

func NewCli(s *bufio.Scanner, out io.Writer, t *bst.Tree, log *zap.SugaredLogger, opts Options) *Cli {
	v := &bst.Visualizer{
		Tree:    t,
		NoColor: opts.NoColor,
	}
	sep := color.New(color.Faint)
	if opts.NoColor {
		sep.DisableColor()
	} else {
		sep.EnableColor()
	}
	return &Cli{
		scanner:    s,
		out:        out,
		tree:       t,
		visualizer: v,
		log:        log,
		opts:       opts,
		sep:        sep,
		dmp:        diffmatchpatch.New(),
	}
}

/*
Start prints the current traversal and then keeps reading lines until -1, EXIT or EOF.
A bare integer deletes that key; anything else is treated as a command.
The scanner error, if any, is returned.
*/
func (c *Cli) Start() error {
	c.printTraversal()
	c.printPrompt()
	for c.scanner.Scan() {
		if done := c.processInput(c.scanner.Text()); done {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
BST CLI

Enter a key to delete it from the tree, -1 to quit.

Available Commands:
  INS <key>  Insert a key into the tree
  DEL <key>  Remove one instance of a key from the tree
  HAS <key>  Report whether a key is in the tree
  MIN        Print the smallest key
  PRE        Print the pre-order traversal
  POST       Print the post-order traversal
  SHOW       Draw the tree
  HELP       Print this help
  EXIT       Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "\n Enter node to delete(-1 to quit): ")
}

func (c *Cli) printTraversal() {
	c.printKeys(c.tree.InOrder())
}

func (c *Cli) printKeys(keys iter.Seq[int]) {
	fmt.Fprint(c.out, bst.FormatStyled(keys, c.styleSeparator))
}

func (c *Cli) styleSeparator(sep string) string {
	return c.sep.Sprint(sep)
}

// processInput returns true once the session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false
	}

	// A numeric first field is always a key, never a command.
	if key, err := strconv.Atoi(fields[0]); err == nil || errors.Is(err, strconv.ErrRange) {
		if err != nil || len(fields) != 1 {
			fmt.Fprintln(c.out, "Usage: <key>, a single integer (-1 to quit)")
			c.log.Debugw("rejected key", "line", line, "error", err)
			return false
		}
		if key == quitKey {
			return true
		}
		c.deleteKey(key)
		return false
	}

	var err error
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "ins":
		err = c.processInsertCommand(fields[1:])
	case "del":
		err = c.processDeleteCommand(fields[1:])
	case "has":
		err = c.processHasCommand(fields[1:])
	case "min":
		c.processMinCommand()
	case "pre":
		c.printKeys(c.tree.PreOrder())
	case "post":
		c.printKeys(c.tree.PostOrder())
	case "show":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "help":
		c.printHelp()
	case "exit":
		return true
	}
	if err != nil {
		c.log.Debugw("rejected input", "line", line, "error", err)
	}
	return false
}

func parseKey(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: %w", usage, errUsage)
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", usage, err)
	}
	return key, nil
}

func (c *Cli) processInsertCommand(args []string) error {
	key, err := parseKey(args, "INS <key>")
	if err != nil {
		fmt.Fprintln(c.out, "Usage: INS <key>")
		return err
	}
	c.tree.Insert(key)
	c.log.Debugw("inserted key", "key", key, "size", c.tree.Len(), "height", c.tree.Height())
	c.printTraversal()
	return nil
}

func (c *Cli) processDeleteCommand(args []string) error {
	key, err := parseKey(args, "DEL <key>")
	if err != nil {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return err
	}
	c.deleteKey(key)
	return nil
}

func (c *Cli) processHasCommand(args []string) error {
	key, err := parseKey(args, "HAS <key>")
	if err != nil {
		fmt.Fprintln(c.out, "Usage: HAS <key>")
		return err
	}
	fmt.Fprintln(c.out, c.tree.Contains(key))
	return nil
}

func (c *Cli) processMinCommand() {
	key, ok := c.tree.Min()
	if !ok {
		fmt.Fprintln(c.out, "Tree is empty.")
		return
	}
	fmt.Fprintln(c.out, key)
}

// Deleting an absent key is not an error, the unchanged traversal is printed all the same.
func (c *Cli) deleteKey(key int) {
	before := bst.Format(c.tree.InOrder())
	if c.tree.Delete(key) {
		c.log.Debugw("deleted key", "key", key, "size", c.tree.Len(), "height", c.tree.Height())
	} else {
		c.log.Debugw("key not present, nothing deleted", "key", key)
	}
	c.printTraversal()

	if c.opts.Diff {
		fmt.Fprintln(c.out)
		fmt.Fprint(c.out, c.diff(before, bst.Format(c.tree.InOrder())))
	}
}

func (c *Cli) diff(before, after string) string {
	diffs := c.dmp.DiffCleanupSemantic(c.dmp.DiffMain(before, after, false))
	if !c.opts.NoColor {
		return c.dmp.DiffPrettyText(diffs)
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
