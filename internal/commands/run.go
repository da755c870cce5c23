package commands

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/movies"
)

var menuItems = []string{
	"0. Exit",
	"1. List of the movies",
	"2. Add a movie",
	"3. Delete a movie",
	"4. Update a movie",
	"5. Stats of the movies",
	"6. Random movie",
	"7. Search a movie",
	"8. Movies sorted by their rating",
	"9. Generate website",
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
// Command errors are printed and the menu continues.
func (a *App) Run(ctx context.Context) error {
	a.console.Println("\n********** My Movies Database **********")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.console.Println("\nMenu:")
		for _, item := range menuItems {
			a.console.Println(item)
		}
		line, err := a.console.Prompt("Enter a choice (0-9): ")
		if err != nil {
			return endOfInput(err)
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			a.console.Println("Invalid input. Please enter a number.")
			continue
		}
		if choice == 0 {
			a.console.Println("Goodbye!")
			return nil
		}

		if err := a.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			a.report(choice, err)
		}

		if _, err := a.console.Prompt("\nPress enter to continue: "); err != nil {
			return endOfInput(err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return a.List()
	case 2:
		return a.promptAdd(ctx)
	case 3:
		query, err := a.console.Prompt("Enter the movie name to delete: ")
		if err != nil {
			return err
		}
		return a.Delete(query)
	case 4:
		query, err := a.console.Prompt("Enter the movie name: ")
		if err != nil {
			return err
		}
		return a.Update(ctx, query)
	case 5:
		return a.Stats()
	case 6:
		return a.Random()
	case 7:
		query, err := a.console.Prompt("Enter part of the movie name to search it: ")
		if err != nil {
			return err
		}
		return a.Search(query)
	case 8:
		return a.SortedByRating()
	case 9:
		return a.GenerateGallery()
	default:
		a.console.Println("Invalid choice. Enter a number between 0 and 9.")
		return nil
	}
}

func (a *App) report(choice int, err error) {
	kind := movies.KindOf(err)
	a.logger.Info("command failed",
		logging.Int(logging.FieldCommand, choice),
		logging.String(logging.FieldErrorKind, kind),
		logging.Error(err))
	if errors.Is(err, movies.ErrTemplateUnavailable) {
		a.console.Warn(UserMessage(err))
		return
	}
	a.console.Println(UserMessage(err))
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
