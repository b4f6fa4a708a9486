package main

import (
	"strconv"
	"strings"

	"github.com/ellipsoid/geodesic"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by the subcommands once the persistent
// flags have been resolved.
type app struct {
	conf *viper.Viper
	log  *zap.Logger
	ell  *geodesic.Ellipsoid
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "geodsolve",
		Short: "Solve geodesic problems on an ellipsoid",
		Long: `
geodsolve solves the direct and inverse geodesic problems and computes the
area and perimeter of geodesic polygons. Flags may also be given through
environment variables prefixed with GEODSOLVE_, e.g. GEODSOLVE_RADIUS.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.Float64P("radius", "a", geodesic.WGS84.Radius(), "Equatorial radius of the ellipsoid (meters).")
	pf.Float64P("flattening", "f", geodesic.WGS84.Flattening(),
		"Flattening of the ellipsoid. Values greater than 1 are taken as the inverse flattening.")
	pf.Bool("unroll", false, "Unroll longitudes instead of reducing them to [-180, 180].")
	pf.String("log-level", "warn", "Log level, one of [debug, info, warn, error].")

	root.AddCommand(a.directCmd(), a.inverseCmd(), a.planimeterCmd())
	a.conf.SetEnvPrefix("GEODSOLVE")
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()
	return root
}

// setup binds the flags of the command being run, persistent ones
// included, and builds the logger and ellipsoid from them.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.conf.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	log, err := newLogger(a.conf.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log = log

	radius := a.conf.GetFloat64("radius")
	flattening := a.conf.GetFloat64("flattening")
	if flattening > 1 {
		flattening = 1 / flattening
	}
	a.ell, err = geodesic.NewEllipsoid(radius, flattening)
	if err != nil {
		return err
	}
	a.log.Debug("ellipsoid",
		zap.Float64("radius", radius),
		zap.Float64("flattening", flattening),
		zap.String("command", cmd.Name()))
	return nil
}

// newLogger builds a development logger writing to stderr at the given
// level.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if level != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", level)
		}
		cfg.Level = zap.NewAtomicLevelAt(l)
	}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l, nil
}

func (a *app) mask(m geodesic.Mask) geodesic.Mask {
	if a.conf.GetBool("unroll") {
		m |= geodesic.LongUnroll
	}
	return m
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Errorf("bad number %q", s)
		}
		vals[i] = v
	}
	return vals, nil
}
