package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/farmos/crop-service/internal/geo"
)

// areaCmd represents the area command
var areaCmd = &cobra.Command{
	Use:   "area <geojson-file>",
	Short: "Compute the geodesic area of a field polygon",
	Long: `Compute the surface area in square meters of a field boundary given as a
GeoJSON Polygon geometry file. Only the outer ring is measured; holes are ignored.`,
	Example: `  crop-service area field.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read geometry file: %w", err)
	}

	var geom geo.Geometry
	if err := json.Unmarshal(data, &geom); err != nil {
		return fmt.Errorf("failed to parse geometry: %w", err)
	}

	area, err := geo.PolygonArea(&geom)
	if err != nil {
		return fmt.Errorf("failed to compute area: %w", err)
	}

	fmt.Printf("%.2f m² (%.4f ha)\n", area, area/10000)
	return nil
}
