package browse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"metroart/internal/artwork"
	"metroart/internal/tui"
)

// stdin is a seam so tests can feed input to the free-text prompt.
var stdin io.Reader = os.Stdin

// selectChoice is a seam so tests can script menu selections.
var selectChoice = tui.SelectChoice

// RunInteractive runs the menu-driven browsing session. Search failures are
// reported and return the user to the menu; only quitting ends the session.
func RunInteractive(ctx context.Context) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Export(); err != nil {
			slog.Warn("Could not export session artworks", "error", err)
		}
	}()

	menu := []tui.Choice{
		{Label: "Search by department"},
		{Label: "Search by artist nationality"},
		{Label: "Search by artist name"},
		{Label: "Quit"},
	}
	quit := len(menu) - 1

	for {
		result, err := selectChoice("Met collection browser", menu)
		if err != nil {
			return err
		}
		if result.Action != tui.ActionSelected || result.Index == quit {
			return nil
		}

		switch result.Index {
		case 0:
			err = runDepartmentSearch(ctx, session)
		case 1:
			err = runNationalitySearch(ctx, session)
		case 2:
			err = runArtistSearch(ctx, session)
		}
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			slog.Error("Search failed", "error", err)
			fmt.Println("Something went wrong, returning to the menu.")
		}
	}
}

// errQuit propagates a quit keypress from a nested list back to the caller.
var errQuit = errors.New("session quit")

func runDepartmentSearch(ctx context.Context, session *Session) error {
	departments := session.Catalog.Departments()
	choices := make([]tui.Choice, len(departments))
	for i, d := range departments {
		choices[i] = tui.Choice{Label: d.Name}
	}

	result, err := selectChoice("Choose a department", choices)
	if err != nil {
		return err
	}
	switch result.Action {
	case tui.ActionQuit:
		return errQuit
	case tui.ActionSelected:
	default:
		return nil
	}

	artworks, err := session.Catalog.SearchByDepartment(ctx, departments[result.Index].ID)
	if err != nil {
		return err
	}
	return browseResults(session, artworks)
}

func runNationalitySearch(ctx context.Context, session *Session) error {
	nationalities := session.Catalog.Nationalities()
	if len(nationalities) == 0 {
		fmt.Println("No nationality list loaded; check the configured CSV file.")
		return nil
	}

	choices := make([]tui.Choice, len(nationalities))
	for i, n := range nationalities {
		choices[i] = tui.Choice{Label: n}
	}

	result, err := selectChoice("Choose a nationality", choices)
	if err != nil {
		return err
	}
	switch result.Action {
	case tui.ActionQuit:
		return errQuit
	case tui.ActionSelected:
	default:
		return nil
	}

	nationality, ok := session.Catalog.NationalityAt(result.Index + 1)
	if !ok {
		return nil
	}

	artworks, err := session.Catalog.SearchByNationality(ctx, nationality)
	if err != nil {
		return err
	}
	return browseResults(session, artworks)
}

func runArtistSearch(ctx context.Context, session *Session) error {
	query, err := promptLine("Artist name to search for: ")
	if err != nil {
		return err
	}
	if query == "" {
		return nil
	}

	artworks, err := session.Catalog.SearchByArtist(ctx, query)
	if err != nil {
		return err
	}
	return browseResults(session, artworks)
}

// browseResults shows the result listing and lets the user drill into
// individual artworks until backing out.
func browseResults(session *Session, artworks []artwork.Artwork) error {
	if len(artworks) == 0 {
		fmt.Println("No results.")
		return nil
	}

	choices := make([]tui.Choice, len(artworks))
	for i, a := range artworks {
		choices[i] = tui.Choice{
			Label:  a.ListLine(),
			Detail: fmt.Sprintf("%s, %s", a.Classification, a.Date),
		}
	}

	for {
		result, err := selectChoice(fmt.Sprintf("%d results", len(artworks)), choices)
		if err != nil {
			return err
		}
		switch result.Action {
		case tui.ActionQuit:
			return errQuit
		case tui.ActionSelected:
		default:
			return nil
		}

		if err := showDetail(artworks[result.Index]); err != nil {
			return err
		}
	}
}

// showDetail prints the full record and offers the image download.
func showDetail(record artwork.Artwork) error {
	fmt.Println(record.Details())

	choices := []tui.Choice{
		{Label: "Download image"},
		{Label: "Back to results"},
	}
	if !record.HasImage() {
		choices = choices[1:]
	}

	result, err := selectChoice(fmt.Sprintf("Artwork #%d", record.ID), choices)
	if err != nil {
		return err
	}
	if result.Action == tui.ActionQuit {
		return errQuit
	}
	if result.Action == tui.ActionSelected && record.HasImage() && result.Index == 0 {
		if err := downloadRecordImage(record, "", false); err != nil {
			slog.Error("Image download failed", "id", record.ID, "error", err)
			fmt.Println("Could not download the image.")
		}
	}
	return nil
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
