package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes a prompt and reads one line, re-asking while the validator
// rejects the input.
func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br := bufio.NewReader(rw)

	tries := 0
	for {
		if _, err := rw.Write([]byte(prompt)); err != nil {
			return "", err
		}

		input, err := br.ReadString('\n')
		if err != nil && input == "" {
			return "", err
		}
		input = strings.TrimSpace(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				rw.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("too many tries")
				}
				continue
			}
		}

		return input, nil
	}
}

// PromptYN asks a yes/no question.
func PromptYN(rw io.ReadWriter, prompt string) (bool, error) {
	str, err := Prompt(rw, prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PromptChoice presents numbered options and returns the chosen index.
func PromptChoice(rw io.ReadWriter, prompt string, options []string) (int, error) {
	rw.Write([]byte(prompt + "\n"))
	for i, opt := range options {
		rw.Write([]byte(fmt.Sprintf("%2d. %s\n", i+1, opt)))
	}

	selection, err := Prompt(rw, "Make your selection: ", WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil || i < 1 || i > len(options) {
				return false, "Invalid selection!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return 0, err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return 0, err
	}
	return i - 1, nil
}
