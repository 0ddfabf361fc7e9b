package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed).SprintFunc()
	skipColor = color.New(color.FgYellow).SprintFunc()
)

// ConsoleTestLogger writes test progress to standard output as the suite runs.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		fmt.Printf("  %s: %s\n", failColor("FAILED"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Printf("  %s: %s\n", skipColor("SKIPPED"), id)
	} else {
		fmt.Printf("  %s: %s (%s)\n", skipColor("SKIPPED"), id, reason)
	}
}

// PrintResults writes a summary of the run to standard output. For a failed
// run it also prints a copy-pasteable command for re-running just the failed
// tests.
func PrintResults(results Results) {
	executed, skipped := 0, 0
	for _, t := range results.Tests {
		if t.Skipped {
			skipped++
		} else {
			executed++
		}
	}

	if results.OK() {
		fmt.Println(passColor(fmt.Sprintf("All tests passed (%d run, %d skipped)", executed, skipped)))
		return
	}

	fmt.Println(failColor(fmt.Sprintf("FAILED TESTS (%d):", len(results.Failures))))
	var rerun commandBuilder
	rerun.add(os.Args[0])
	for _, f := range results.Failures {
		fmt.Printf("  * %s\n", f.TestID)
		rerun.add("-run", "^"+f.TestID.String()+"$")
	}
	fmt.Println()
	fmt.Println("To re-run only the failed tests:")
	fmt.Printf("  %s\n", rerun)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
