package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/checkers"
	"github.com/checkers/game"
	"github.com/checkers/search"
)

// stderr receives the log.
var stderr io.Writer = os.Stderr

func main() {
	// .env must be loaded before the flags are parsed so that it feeds their EnvVars
	app := newApp(godotenv.Load())
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("checkers failed")
		os.Exit(1)
	}
}

func newApp(envErr error) *cli.App {
	return &cli.App{
		Name:  "checkers",
		Usage: "play checkers against a time-bounded alpha-beta search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "JSON configuration file",
				EnvVars: []string{"CHECKERS_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"CHECKERS_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "draw the board without colours",
				EnvVars: []string{"CHECKERS_NO_COLOR"},
			},
		},
		Before: func(c *cli.Context) error {
			if err := setupLogger(c); err != nil {
				return err
			}
			if envErr != nil {
				log.Debug().Err(envErr).Msg("no .env file loaded")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a game, any side may be a computer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "load", Usage: "saved board to start from", EnvVars: []string{"CHECKERS_LOAD"}},
					&cli.BoolFlag{Name: "p1-computer", Usage: "player 1 is a computer", EnvVars: []string{"CHECKERS_P1_COMPUTER"}},
					&cli.BoolFlag{Name: "p2-computer", Usage: "player 2 is a computer", EnvVars: []string{"CHECKERS_P2_COMPUTER"}},
					timeLimitFlag(),
					&cli.IntFlag{Name: "first", Usage: "player making the first move (1 or 2)", EnvVars: []string{"CHECKERS_FIRST"}},
					&cli.StringFlag{Name: "record", Usage: "write the game record to this file", EnvVars: []string{"CHECKERS_RECORD"}},
				},
				Action: play,
			},
			{
				Name:  "analyze",
				Usage: "search a position and rank the moves",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Usage: "board file, the starting position if empty"},
					playerFlag(),
					timeLimitFlag(),
					&cli.StringFlag{Name: "dot", Usage: "write the root of the search as Graphviz to this file"},
				},
				Action: analyze,
			},
			{
				Name:  "selfplay",
				Usage: "let the computer play against itself",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 10, EnvVars: []string{"CHECKERS_GAMES"}},
					timeLimitFlag(),
					&cli.StringFlag{Name: "record-dir", Usage: "write one record per game in this directory"},
				},
				Action: selfplay,
			},
			{
				Name:  "perft",
				Usage: "count the positions reachable in a number of plies",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Usage: "board file, the starting position if empty"},
					playerFlag(),
					&cli.IntFlag{Name: "depth", Value: 6},
					&cli.BoolFlag{Name: "divide", Usage: "split the count by root move"},
				},
				Action: perft,
			},
		},
	}
}

func timeLimitFlag() cli.Flag {
	return &cli.Float64Flag{
		Name:    "time-limit",
		Aliases: []string{"t"},
		Usage:   "seconds a computer may think about a move (default: the configured search time limit)",
		EnvVars: []string{"CHECKERS_TIME_LIMIT"},
	}
}

func playerFlag() cli.Flag {
	return &cli.IntFlag{Name: "player", Usage: "side to move (1 or 2)", Value: 1}
}

func setupLogger(c *cli.Context) error {
	lvl, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return errors.WithStack(err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}

func loadConfig(c *cli.Context) (checkers.Config, error) {
	if path := c.String("config"); path != "" {
		return checkers.LoadConfig(path)
	}
	return checkers.DefaultConfig(), nil
}

func parsePlayer(n int) (game.Player, error) {
	if n != 1 && n != 2 {
		return 0, errors.Errorf("player %d does not exist, use 1 or 2", n)
	}
	return game.Player(n - 1), nil
}

func loadBoard(path string) (game.Board, error) {
	if path == "" {
		return game.NewBoard(), nil
	}
	return game.LoadFile(path)
}

// timeLimit is the thinking time of the computers: --time-limit when it is given, the configured
// search time limit otherwise.
func timeLimit(c *cli.Context, conf checkers.Config) time.Duration {
	if c.IsSet("time-limit") {
		return time.Duration(c.Float64("time-limit") * float64(time.Second))
	}
	return conf.Search.TimeLimit
}

func engine(conf checkers.Config, limit time.Duration) *search.Engine {
	sc := conf.Search
	sc.TimeLimit = limit
	return search.New(sc, search.WithLogger(log.Logger))
}

func play(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("first") {
		if conf.FirstPlayer, err = parsePlayer(c.Int("first")); err != nil {
			return err
		}
	}
	b, err := loadBoard(c.String("load"))
	if err != nil {
		return err
	}

	computer := [2]bool{c.Bool("p1-computer"), c.Bool("p2-computer")}
	limit := timeLimit(c, conf)
	if computer[0] || computer[1] {
		if err = conf.ValidTimeLimit(limit); err != nil {
			return err
		}
	}

	var agents [2]*checkers.Agent
	console := checkers.NewConsole(os.Stdin, os.Stdout)
	for p := game.Player0; p <= game.Player1; p++ {
		if computer[p] {
			agents[p] = checkers.NewComputer(p, engine(conf, limit))
		} else {
			agents[p] = checkers.NewHuman(p, console)
		}
	}

	arena := checkers.NewArena(conf, b, agents[0], agents[1],
		checkers.WithRenderer(checkers.NewRenderer(os.Stdout, !c.Bool("no-color"))),
		checkers.WithLogger(log.Logger))
	outcome, err := arena.Play()
	if err != nil {
		return err
	}
	if path := c.String("record"); path != "" {
		return checkers.SaveRecord(path, arena.Record(outcome))
	}
	return nil
}

func analyze(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	p, err := parsePlayer(c.Int("player"))
	if err != nil {
		return err
	}
	b, err := loadBoard(c.String("board"))
	if err != nil {
		return err
	}
	if err = b.Consistent(); err != nil {
		return err
	}

	r := checkers.NewRenderer(os.Stdout, !c.Bool("no-color"))
	if err = r.Render(b, nil); err != nil {
		return err
	}
	res := engine(conf, timeLimit(c, conf)).Search(b, p)
	if res.Move.IsNone() {
		fmt.Printf("%v has no legal move\n", p)
		return nil
	}
	fmt.Printf("%v plays %v (depth %d, score %d, %d nodes, %v)\n",
		p, res.Move, res.Depth, res.Score, res.Nodes, res.Elapsed.Round(time.Millisecond))
	for i, rs := range res.Ranked() {
		fmt.Printf("  %2d. %-30v %d\n", i+1, rs.Move, rs.Score)
	}

	if path := c.String("dot"); path != "" {
		dot, err := res.DOT()
		if err != nil {
			return err
		}
		return errors.WithStack(os.WriteFile(path, []byte(dot), 0644))
	}
	return nil
}

func selfplay(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	games := c.Int("games")
	limit := timeLimit(c, conf)
	dir := c.String("record-dir")
	if dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return errors.WithStack(err)
		}
	}

	series := checkers.NewSeries(conf, game.NewBoard(),
		checkers.NewComputer(game.Player0, engine(conf, limit)),
		checkers.NewComputer(game.Player1, engine(conf, limit)),
		checkers.WithLogger(log.Logger))
	bar := newBar(games, "self play")
	var saveErr error
	series.OnGame = func(i int, r checkers.Record) {
		bar.Add(1)
		if dir != "" && saveErr == nil {
			saveErr = checkers.SaveRecord(filepath.Join(dir, r.ID+".json"), r)
		}
	}

	_, stats, err := series.Play(games)
	bar.Finish()
	fmt.Println()
	if err != nil {
		return err
	}
	if _, err = stats.WriteTo(os.Stdout); err != nil {
		return err
	}
	return saveErr
}

func perft(c *cli.Context) error {
	p, err := parsePlayer(c.Int("player"))
	if err != nil {
		return err
	}
	b, err := loadBoard(c.String("board"))
	if err != nil {
		return err
	}
	depth := c.Int("depth")
	start := time.Now()

	if !c.Bool("divide") {
		fmt.Printf("perft(%d) = %d (%v)\n", depth, game.Perft(b, p, depth), time.Since(start).Round(time.Millisecond))
		return nil
	}

	div := game.Divide(b, p, depth)
	moves := make([]game.Move, 0, len(div))
	for m := range div {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	var total uint64
	for _, m := range moves {
		fmt.Printf("%-30v %d\n", m, div[m])
		total += div[m]
	}
	fmt.Printf("total %d (%v)\n", total, time.Since(start).Round(time.Millisecond))
	return nil
}
