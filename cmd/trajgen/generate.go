package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/holonomy/trajgen/config"
	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
	"github.com/holonomy/trajgen/path"
	"github.com/holonomy/trajgen/trajectory"
)

var (
	flagPathFile     string
	flagSettingsFile string
	flagStartHeading float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a trajectory from a path file and robot settings",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagPathFile, "path", "", "path file (JSON)")
	generateCmd.Flags().StringVar(&flagSettingsFile, "settings", "", "robot settings file (YAML)")
	generateCmd.Flags().Float64Var(&flagStartHeading, "start-heading", 0, "starting field heading in degrees")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pathFile := flagPathFile
	if pathFile == "" {
		pathFile = v.GetString("path")
	}
	settingsFile := flagSettingsFile
	if settingsFile == "" {
		settingsFile = v.GetString("settings")
	}
	if pathFile == "" || settingsFile == "" {
		return fmt.Errorf("both --path and --settings are required")
	}

	p, err := path.Load(pathFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(settingsFile)
	if err != nil {
		return err
	}

	traj, err := trajectory.New(p, cfg, kinematics.ChassisSpeeds{}, geom.Deg(flagStartHeading))
	if err != nil {
		return err
	}
	log.Printf("generated %d states, %.3f s total, %d events",
		len(traj.States()), traj.TotalTime(), len(traj.Events()))

	if flagJSON {
		return writeJSON(traj)
	}
	return writeCSV(traj)
}

func writeJSON(traj *trajectory.Trajectory) error {
	out := struct {
		TotalTime float64            `json:"totalTime"`
		States    []trajectory.State `json:"states"`
		Events    []trajectory.Event `json:"events"`
	}{traj.TotalTime(), traj.States(), traj.Events()}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(traj *trajectory.Trajectory) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"time", "x", "y", "heading_deg", "velocity", "acceleration", "angular_velocity", "curvature"}); err != nil {
		return err
	}
	for _, s := range traj.States() {
		rec := []string{
			strconv.FormatFloat(s.Time, 'f', 4, 64),
			strconv.FormatFloat(s.Pose.Translation.X, 'f', 4, 64),
			strconv.FormatFloat(s.Pose.Translation.Y, 'f', 4, 64),
			strconv.FormatFloat(s.Pose.Rotation.Degrees(), 'f', 2, 64),
			strconv.FormatFloat(s.Velocity, 'f', 4, 64),
			strconv.FormatFloat(s.Acceleration, 'f', 4, 64),
			strconv.FormatFloat(s.AngularVelocity, 'f', 4, 64),
			strconv.FormatFloat(s.Curvature, 'f', 5, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
