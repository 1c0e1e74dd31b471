// Package cityio reads city instances and writes solved tours.
//
// Inputs:
//   - TSPLIB .tsp files with EUC_2D (or unspecified) edge weights
//     and a NODE_COORD_SECTION.
//   - CSV files with a "label,x,y" header.
//
// Outputs:
//   - plain text ("Path:" line plus length),
//   - YAML documents,
//   - TSPLIB TOUR files,
//   - GeoJSON Features holding the closed tour as a LineString.
//
// Readers assign nothing beyond what the file carries: labels come from
// the file, duplicates and non-finite coordinates are left for tsp.Solve
// to reject.
package cityio
