package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/n2code/docwriter"
	"github.com/n2code/docwriter/internal/output"
	"golang.org/x/term"
)

const ctrlC = 3

// optionLetters assigns each option the first of its letters not taken by a previous option.
// Options without a free letter cannot be selected by key.
func optionLetters(options []string, style output.Styler) (letterToChoice map[rune]string, displayOptions []string) {
	letterToChoice = make(map[rune]string)
NextOption:
	for _, option := range options {
		for i, letter := range option {
			if _, taken := letterToChoice[unicode.ToLower(letter)]; taken {
				continue
			}
			letterToChoice[unicode.ToLower(letter)] = option
			letterToChoice[unicode.ToUpper(letter)] = option
			printLetter := fmt.Sprintf("[%c]", letter)
			if style {
				printLetter = style.Marker(string(letter))
			}
			displayOptions = append(displayOptions, option[:i]+printLetter+option[i+len(string(letter)):])
			continue NextOption
		}
		displayOptions = append(displayOptions, option)
	}
	return
}

// PromptUser asks on the terminal. With escape sequences allowed a single key press decides, otherwise ENTER is needed.
func PromptUser(allowEscapeSequences bool) docwriter.RequestChoice {
	return func(request string, options []string, cleanup bool) (choice string) {
		letterToChoice, displayOptions := optionLetters(options, output.Styler(allowEscapeSequences))

		key := make(chan rune)
		interrupt := make(chan os.Signal, 1)

		signal.Notify(interrupt, os.Interrupt)
		defer signal.Reset(os.Interrupt)

		rawMode := false
		out := func(text string) {
			fmt.Fprint(os.Stdout, text)
		}
		rawOut := func(text string) {
			if rawMode {
				fmt.Fprint(os.Stdout, text)
			}
		}

		if allowEscapeSequences {
			if oldTermState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
				rawMode = true
				defer term.Restore(int(os.Stdin.Fd()), oldTermState)
			} // else ENTER is required to confirm input
		}
		waitForKey := func() {
			reader := bufio.NewReaderSize(os.Stdin, 16)
			input, err := reader.ReadByte()
			if err != nil {
				interrupt <- os.Interrupt //stdin closed, nobody can answer
				return
			}
			if !rawMode && reader.Buffered() > 0 {
				if extra, _ := reader.ReadByte(); extra != '\n' && extra != '\r' {
					key <- '?'
					return
				}
			}
			if rawMode && input == ctrlC {
				interrupt <- os.Interrupt
				return
			}
			rawOut(string(unicode.ToUpper(rune(input))))
			key <- rune(input)
		}

		prompt := fmt.Sprintf("%s (%s): ", request, strings.Join(displayOptions, " / "))
		out(prompt)
		for {
			go waitForKey()
			select {
			case letterPressed := <-key:
				if selection, found := letterToChoice[letterPressed]; found {
					if cleanup {
						rawOut("\033[2K\r") //clear line
					} else {
						rawOut("\r\n")
					}
					return selection
				}
				rawOut("\a\033[1D") //bell, cursor back
				if !rawMode {
					out(prompt)
				}
			case <-interrupt:
				out("<CANCELLED>\r\n")
				return docwriter.ChoiceAborted
			}
		}
	}
}

// AutoChooseDefaultOption answers every request with its first option.
func AutoChooseDefaultOption(quiet bool) docwriter.RequestChoice {
	return func(request string, options []string, cleanup bool) string {
		defaultChoice := options[0]
		if !cleanup && !quiet {
			fmt.Fprintf(os.Stdout, "%s => [%s]\n", request, strings.ToUpper(defaultChoice))
		}
		return defaultChoice
	}
}
