package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks for numbers on a line-oriented console.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("%w: unexpected end of input after %q", ErrMalformedInput, prompt)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// readCount reads a single non-negative integer.
func (p *prompter) readCount(prompt string) (int, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	nums, err := parseInts([]string{line})
	if err != nil {
		return 0, err
	}
	if nums[0] < 0 {
		return 0, fmt.Errorf("%w: %d must not be negative", ErrMalformedInput, nums[0])
	}
	return nums[0], nil
}

// readPools runs the console dialogue for pool definitions.
func (p *prompter) readPools() ([]PoolDefinition, error) {
	n, err := p.readCount("Enter number of individual drawings:")
	if err != nil {
		return nil, err
	}
	// n comes straight from the console; no preallocation from it.
	var defs []PoolDefinition
	for i := 1; i <= n; i++ {
		line, err := p.readLine(fmt.Sprintf("Define individual drawing %d: <smallestValue> <biggestValue> <numberOfBallsToDraw>", i))
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: drawing %d needs 3 numbers, got %q", ErrMalformedInput, i, line)
		}
		nums, err := parseInts(fields)
		if err != nil {
			return nil, fmt.Errorf("drawing %d: %w", i, err)
		}
		defs = append(defs, PoolDefinition{Smallest: nums[0], Biggest: nums[1], Count: nums[2]})
	}
	return defs, nil
}

func (p *prompter) readRepetitions() (int, error) {
	return p.readCount("Enter number of repetitions:")
}
