package main

import (
	"fmt"
	"io"

	"github.com/ellipsoid/geodesic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) directCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "direct LAT1 LON1 AZI1 S12",
		Short: "Solve the direct geodesic problem",
		Long: `Prints LAT2 LON2 AZI2 for the point reached from (LAT1, LON1) travelling
S12 meters with azimuth AZI1. With --full the line reads
LAT1 LON1 AZI1 LAT2 LON2 AZI2 S12 A12 m12 M12 M21 S12area.
Put -- before the values when any of them is negative.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			arc := a.conf.GetBool("arc")
			a.log.Debug("direct",
				zap.Float64s("args", v), zap.Bool("arc", arc))
			r := a.ell.GenDirect(v[0], v[1], v[2], arc, v[3], a.mask(geodesic.All))
			writeResult(cmd.OutOrStdout(), r, a.conf.GetBool("full"), false)
			return nil
		},
	}
	cmd.Flags().Bool("arc", false, "Interpret S12 as an arc length in degrees.")
	cmd.Flags().Bool("full", false, "Print every computed quantity.")
	return cmd
}

func (a *app) inverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse LAT1 LON1 LAT2 LON2",
		Short: "Solve the inverse geodesic problem",
		Long: `Prints AZI1 AZI2 S12 for the shortest geodesic between (LAT1, LON1) and
(LAT2, LON2). With --full the line reads
LAT1 LON1 AZI1 LAT2 LON2 AZI2 S12 A12 m12 M12 M21 S12area.
Put -- before the values when any of them is negative.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			a.log.Debug("inverse", zap.Float64s("args", v))
			r := a.ell.Inverse(v[0], v[1], v[2], v[3], a.mask(geodesic.All))
			writeResult(cmd.OutOrStdout(), r, a.conf.GetBool("full"), true)
			return nil
		},
	}
	cmd.Flags().Bool("full", false, "Print every computed quantity.")
	return cmd
}

func writeResult(w io.Writer, r geodesic.Result, full, inverse bool) {
	switch {
	case full:
		fmt.Fprintf(w, "%.11f %.11f %.11f %.11f %.11f %.11f %.6f %.11f %.6f %.9f %.9f %.1f\n",
			r.Lat1, r.Lon1, r.Azi1, r.Lat2, r.Lon2, r.Azi2,
			r.S12, r.A12, r.ReducedLength, r.M12, r.M21, r.Area)
	case inverse:
		fmt.Fprintf(w, "%.11f %.11f %.6f\n", r.Azi1, r.Azi2, r.S12)
	default:
		fmt.Fprintf(w, "%.11f %.11f %.11f\n", r.Lat2, r.Lon2, r.Azi2)
	}
}
