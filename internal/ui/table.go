package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Summary describes a finished run of the timer.
type Summary struct {
	Laps      []string
	Completed map[session.Phase]int
	Durations map[session.Phase]int
}

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output session table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// PrintSummary prints the completed session counts and any laps that were
// still recorded when the timer exited.
func PrintSummary(s Summary, writer io.Writer) {
	data := [][]string{{"Phase", "Length", "Completed"}}

	for _, p := range []session.Phase{session.Work, session.Break} {
		length := time.Duration(s.Durations[p]) * time.Second

		data = append(data, []string{
			p.Title(),
			Cyan(timeutil.HumanMinutes(length)),
			Green(strconv.Itoa(s.Completed[p])),
		})
	}

	PrintTable(data, writer)

	if len(s.Laps) == 0 {
		return
	}

	laps := [][]string{{"#", "Remaining"}}

	for i, lap := range s.Laps {
		laps = append(laps, []string{strconv.Itoa(i + 1), Magenta(lap)})
	}

	PrintTable(laps, writer)
}
