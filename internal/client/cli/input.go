package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// promptText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func promptText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the user's terminal without echo.
// A newline is printed after the read to keep the UI tidy.
func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// promptChoice prints the numbered options and reads until the user picks
// one. Entering nothing keeps the current value.
func promptChoice(reader *bufio.Reader, prompt string, options []string, current string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, option := range options {
		marker := " "
		if option == current {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d. %s\n", marker, i+1, option)
	}
	for {
		line, err := promptText(reader, "Pick a number (empty keeps current)", w)
		if err != nil {
			return "", err
		}
		if line == "" {
			return current, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(w, "Not a valid option.")
			continue
		}
		return options[n-1], nil
	}
}

// promptNumber reads a positive number, keeping the current value on empty
// input.
func promptNumber(reader *bufio.Reader, prompt string, current float64, w io.Writer) (float64, error) {
	for {
		line, err := promptText(reader, fmt.Sprintf("%s (current %g, empty keeps it)", prompt, current), w)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return current, nil
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value <= 0 {
			fmt.Fprintln(w, "Not a valid number.")
			continue
		}
		return value, nil
	}
}
