package repl

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Every prompt accepts a literal q/Q to abort the in-progress flow before
// anything is committed.

// readLine prompts for free text. cancelled is true when the user typed
// the q sentinel.
func readLine(reader *bufio.Reader, label string) (value string, cancelled bool) {
	fmt.Print(label)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "q") {
		return "", true
	}
	return input, false
}

// readInt re-prompts until the input parses as an integer, or the user
// cancels.
func readInt(reader *bufio.Reader, label string) (int, bool) {
	for {
		input, cancelled := readLine(reader, label)
		if cancelled {
			return 0, true
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Invalid input. Enter a number or 'q' to cancel.")
			continue
		}
		return n, false
	}
}

// readDecimal re-prompts until the input parses as a decimal, or the user
// cancels. Comma grouping ("50,000") is tolerated.
func readDecimal(reader *bufio.Reader, label string) (decimal.Decimal, bool) {
	for {
		input, cancelled := readLine(reader, label)
		if cancelled {
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(input, ",", ""))
		if err != nil {
			fmt.Println("Invalid input. Enter a numeric value or 'q' to cancel.")
			continue
		}
		return d, false
	}
}

// confirm returns true only for y/yes (case-insensitive).
func confirm(reader *bufio.Reader, label string) bool {
	fmt.Print(label)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
