package trigger

type Configuration struct {
	MaxEvents        int    `json:"max_events"`
	Verbosity        int    `json:"verbosity"`
	RunNumber        int    `json:"run_number"`
	FileIn           string `json:"file_in"`
	FileOut          string `json:"file_out"`
	MenuFile         string `json:"menu_file"`
	JetCollection    string `json:"jet_collection"`
	SeedThreshold    int    `json:"seed_threshold"`
	NoDB             bool   `json:"no_db"`
	Discard          bool   `json:"discard"`
	Skip             int    `json:"skip"`
	Host             string `json:"host"`
	User             string `json:"user"`
	Passwd           string `json:"pass"`
	DBName           string `json:"dbname"`
	NumWorkers       int    `json:"num_workers"`
	WriteData        bool   `json:"write_data"`
	WriteComposites  bool   `json:"write_composites"`
	CompressionLevel int    `json:"compression_level"`
	MetricsAddr      string `json:"metrics_addr"`
}
