package trigger

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type algorithmRow struct {
	Name   string `db:"Name"`
	Type   string `db:"Type"`
	Inputs string `db:"Inputs"`
}

type parameterRow struct {
	Algorithm string `db:"Algorithm"`
	ParameterEntry
}

// LoadMenuFromDB reads the topological menu valid for runNumber. Inputs are
// stored as a comma separated list of collection names.
func LoadMenuFromDB(db *sqlx.DB, runNumber int, verbosity int, logger Logger) (MenuConfig, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	query := "SELECT Name, Type, Inputs FROM TopoAlgorithms WHERE MinRun <= ? and MaxRun >= ? ORDER BY Position"
	if verbosity > 0 {
		message := fmt.Sprintf("Reading topological menu for run %d from database", runNumber)
		logger.Info(message, "database")
	}
	if verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query, runNumber, runNumber)
	if err != nil {
		return MenuConfig{}, fmt.Errorf("error querying database: %w", err)
	}
	defer rows.Close()

	menu := MenuConfig{}
	index := make(map[string]int)
	for rows.Next() {
		result := algorithmRow{}
		if err := rows.StructScan(&result); err != nil {
			return MenuConfig{}, fmt.Errorf("error scanning DB row: %w", err)
		}
		inputs := make([]string, 0)
		for _, input := range strings.Split(result.Inputs, ",") {
			if input = strings.TrimSpace(input); input != "" {
				inputs = append(inputs, input)
			}
		}
		index[result.Name] = len(menu.Algorithms)
		menu.Algorithms = append(menu.Algorithms, AlgorithmConfig{
			Name:   result.Name,
			Type:   AlgorithmType(result.Type),
			Inputs: inputs,
		})
	}
	if err := rows.Err(); err != nil {
		return MenuConfig{}, fmt.Errorf("error reading DB rows: %w", err)
	}

	query = "SELECT Algorithm, Name, Idx, Value FROM TopoParameters WHERE MinRun <= ? and MaxRun >= ? ORDER BY Algorithm, Name, Idx"
	if verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}
	params, err := db.Queryx(query, runNumber, runNumber)
	if err != nil {
		return MenuConfig{}, fmt.Errorf("error querying database: %w", err)
	}
	defer params.Close()

	for params.Next() {
		result := parameterRow{}
		if err := params.StructScan(&result); err != nil {
			return MenuConfig{}, fmt.Errorf("error scanning DB row: %w", err)
		}
		i, ok := index[result.Algorithm]
		if !ok {
			if verbosity > 1 {
				message := fmt.Sprintf("Skipping parameter %s of unknown algorithm %s", result.Name, result.Algorithm)
				logger.Info(message, "database")
			}
			continue
		}
		menu.Algorithms[i].Parameters = append(menu.Algorithms[i].Parameters, result.ParameterEntry)
	}
	if err := params.Err(); err != nil {
		return MenuConfig{}, fmt.Errorf("error reading DB rows: %w", err)
	}

	if verbosity > 0 {
		message := fmt.Sprintf("Loaded %d algorithms", len(menu.Algorithms))
		logger.Info(message, "database")
	}
	return menu, nil
}
