package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"weatherwear/internal/recommend"
)

const (
	title     = "WeatherWear.com"
	separator = "____________________________________________________"
)

const (
	optionCurrent = iota + 1
	optionFuture
	optionExit
)

var options = []string{
	"1- Recommend Clothing for current location",
	"2- Recommend clothing for future location",
	"3- Exit",
}

// Menu is the interactive console front end. Input is read as
// whitespace separated tokens, so answers may share a line.
type Menu struct {
	scanner     *bufio.Scanner
	out         io.Writer
	recommender recommend.Service
	styles      styles
	logger      *slog.Logger
}

func New(in io.Reader, out io.Writer, recommender recommend.Service, logger *slog.Logger) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Menu{
		scanner:     scanner,
		out:         out,
		recommender: recommender,
		styles:      newStyles(out),
		logger:      logger.With("component", "menu"),
	}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		token, ok := m.next()
		if !ok {
			return m.scanner.Err()
		}

		option, err := strconv.Atoi(token)
		if err != nil {
			option = 0
		}

		switch option {
		case optionCurrent:
			m.recommendCurrent(ctx)
		case optionFuture:
			if !m.recommendFuture(ctx) {
				return m.scanner.Err()
			}
		case optionExit:
			m.println("Exiting WeatherWear.com")
			return nil
		default:
			m.println(m.styles.err.Render(
				fmt.Sprintf("Option %s is invalid. Please enter an integer value between 1 and %d", token, len(options))))
		}
	}
}

func (m *Menu) printMenu() {
	m.println(m.styles.title.Render(title))
	m.println(m.styles.separator.Render(separator))
	for _, option := range options {
		m.println(option)
	}
	m.print(m.styles.prompt.Render("Choose your option: "))
}

func (m *Menu) recommendCurrent(ctx context.Context) {
	message, err := m.recommender.ForCurrentLocation(ctx)
	if err != nil {
		m.printError(err)
		return
	}
	m.println(message)
}

// recommendFuture returns false if input ended before both answers were read
func (m *Menu) recommendFuture(ctx context.Context) bool {
	m.print("Enter 3 digit airport IATA (in uppercase format) : ")
	code, ok := m.next()
	if !ok {
		return false
	}
	m.print("Enter day of arrival (in format YYYY-MM-DD): ")
	date, ok := m.next()
	if !ok {
		return false
	}

	message, err := m.recommender.ForAirportAndDate(ctx, code, date)
	if err != nil {
		m.printError(err)
		return true
	}
	m.println(message)
	return true
}

func (m *Menu) printError(err error) {
	m.logger.Debug("recommendation failed", "error", err)
	m.println(m.styles.err.Render("Error - " + err.Error()))
}

func (m *Menu) next() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
