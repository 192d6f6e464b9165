package checkers

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/checkers/game"
	"github.com/checkers/search"
)

// Config for a game of checkers.
// It holds the search configuration shared by the computer players as well as the rules of the
// session around the board (draw rule, accepted time limits, who moves first).
type Config struct {
	Name   string        `json:"name"`
	Search search.Config `json:"search"`
	// MoveLimit is the number of consecutive moves without a capture after which the game is drawn.
	MoveLimit int `json:"move_limit"`
	// bounds of the time limit a user may pick for a computer player
	TimeLimitLower time.Duration `json:"time_limit_lower"`
	TimeLimitUpper time.Duration `json:"time_limit_upper"`
	FirstPlayer    game.Player   `json:"first_player"`
}

func DefaultConfig() Config {
	return Config{
		Name:           "checkers",
		Search:         search.DefaultConfig(),
		MoveLimit:      50,
		TimeLimitLower: 3 * time.Second,
		TimeLimitUpper: 60 * time.Second,
		FirstPlayer:    game.Player0,
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs error
	if !c.Search.IsValid() {
		errs = multierror.Append(errs, errors.New("search config is not valid"))
	}
	if c.MoveLimit < 1 {
		errs = multierror.Append(errs, errors.Errorf("move limit %d must be positive", c.MoveLimit))
	}
	if c.TimeLimitLower <= 0 || c.TimeLimitUpper < c.TimeLimitLower {
		errs = multierror.Append(errs, errors.Errorf("time limit range [%v, %v] is empty", c.TimeLimitLower, c.TimeLimitUpper))
	}
	if c.FirstPlayer > game.Player1 {
		errs = multierror.Append(errs, errors.Errorf("first player %d does not exist", c.FirstPlayer))
	}
	return errs
}

// ValidTimeLimit checks that d lies within the accepted time limit range.
func (c Config) ValidTimeLimit(d time.Duration) error {
	if d < c.TimeLimitLower || d > c.TimeLimitUpper {
		return errors.Errorf("time limit %v is outside of [%v, %v]", d, c.TimeLimitLower, c.TimeLimitUpper)
	}
	return nil
}

// LoadConfig reads a JSON configuration from filename. Fields missing from the file keep their
// default value.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err = sonic.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "unable to parse config %s", filename)
	}
	if err = conf.Validate(); err != nil {
		return conf, errors.WithMessage(err, "invalid config "+filename)
	}
	return conf, nil
}

// Save writes c to filename as JSON.
func (c Config) Save(filename string) error {
	data, err := sonic.ConfigStd.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(filename, data, 0644))
}
