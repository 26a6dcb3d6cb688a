package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"metroart/cmd/browse"
	"metroart/internal/config"
)

// CLI represents the complete command structure for the metroart application.
type CLI struct {
	// Datasette flags
	Datasette   bool   `help:"Export fetched artworks to a SQLite database at the end of a run" default:"true"`
	DatasetteDB string `help:"Path to SQLite export database file" default:"./metroart.db"`

	// Reference data flags
	Nationalities string `help:"Path to the nationality reference CSV file"`

	Browse      BrowseCmd      `cmd:"" default:"1" help:"Browse the collection interactively"`
	Departments DepartmentsCmd `cmd:"" help:"List the museum departments"`
	Search      SearchCmd      `cmd:"" help:"Search artworks"`
	Show        ShowCmd        `cmd:"" help:"Show full details for one object id"`
	Image       ImageCmd       `cmd:"" help:"Download the image for one object id"`
}

// BrowseCmd runs the interactive menu session.
type BrowseCmd struct{}

// DepartmentsCmd lists departments with their ids.
type DepartmentsCmd struct{}

// SearchCmd groups the three search kinds.
type SearchCmd struct {
	Department  SearchDepartmentCmd  `cmd:"" help:"Search artworks by department id"`
	Nationality SearchNationalityCmd `cmd:"" help:"Search artworks by artist nationality"`
	Artist      SearchArtistCmd      `cmd:"" help:"Search artworks by artist name"`
}

// SearchDepartmentCmd searches one department by id.
type SearchDepartmentCmd struct {
	ID int `arg:"" help:"Department id (see the departments command)"`
}

// SearchNationalityCmd searches by artist nationality.
type SearchNationalityCmd struct {
	Nationality string `arg:"" help:"Nationality to search for (e.g. French)"`
}

// SearchArtistCmd searches by artist name substring.
type SearchArtistCmd struct {
	Query string `arg:"" help:"Artist name (or part of it) to search for"`
}

// ShowCmd prints one object's full details.
type ShowCmd struct {
	ID int `arg:"" help:"Object id"`
}

// ImageCmd downloads one object's image.
type ImageCmd struct {
	ID        int    `arg:"" help:"Object id"`
	Output    string `short:"o" help:"Directory to save the image into (defaults to images.dir from config)"`
	Overwrite bool   `help:"Re-download even if the image file already exists"`
}

// Execute runs the Kong-based CLI.
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("metroart"),
		kong.Description("Browse and search the Met Museum public collection."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)

	if cli.Nationalities != "" {
		viper.Set("nationalities.csvfile", cli.Nationalities)
		config.NationalitiesCSV = cli.Nationalities
	}
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// Run methods for each command

func (b *BrowseCmd) Run() error {
	return browse.RunInteractive(context.Background())
}

func (d *DepartmentsCmd) Run() error {
	return browse.ListDepartments(context.Background())
}

func (s *SearchDepartmentCmd) Run() error {
	return browse.SearchDepartment(context.Background(), s.ID)
}

func (s *SearchNationalityCmd) Run() error {
	return browse.SearchNationality(context.Background(), s.Nationality)
}

func (s *SearchArtistCmd) Run() error {
	return browse.SearchArtist(context.Background(), s.Query)
}

func (s *ShowCmd) Run() error {
	return browse.ShowObject(context.Background(), s.ID)
}

func (i *ImageCmd) Run() error {
	return browse.FetchImage(context.Background(), i.ID, i.Output, i.Overwrite)
}
