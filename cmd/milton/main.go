// Command milton prints a snapshot of the public site content: the notice
// board, the featured programs and the faculty roster, as a reader of the
// site would see them.
package main

import (
	"fmt"
	"os"

	"github.com/okdev/milton/internal/app/views"
	"github.com/okdev/milton/internal/bootstrap"
	"github.com/okdev/milton/internal/pkg/helpers"
	"github.com/okdev/milton/internal/pkg/logger"
)

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	app, err := bootstrap.New(configPath, nil, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer app.Close()

	printSnapshot(app)
}

func printSnapshot(app *bootstrap.App) {
	fmt.Println("Latest Notices & Announcements")
	fmt.Println("==============================")
	for _, n := range app.NoticeBoard().Notices() {
		fmt.Printf("%s [%s]\n", n.Title, n.Category)
		fmt.Printf("  %s at %s\n", helpers.FormatLongDate(n.Date), n.Time)
		fmt.Printf("  %s\n\n", n.Content)
	}

	fmt.Println("Featured Programs")
	fmt.Println("=================")
	for _, p := range app.FeaturedPrograms().Featured() {
		fmt.Printf("%s (%s)\n", p.Title, p.Category)
		fmt.Printf("  %s, starts %s\n\n", p.Duration, p.StartDate)
	}

	fmt.Println("Meet Our Faculty")
	fmt.Println("================")
	section := app.FacultySection()
	if section.Empty() {
		fmt.Println("No faculty members have been added yet.")
		return
	}
	for _, m := range section.Members() {
		fmt.Printf("%s, %s\n", m.Name, m.Title)
		fmt.Printf("  %s\n", m.Bio)
		fmt.Printf("  photo: %s\n\n", views.PhotoURL(m))
	}
}
