package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/vcsaturninus/cinic/parse/ini"
	"github.com/vcsaturninus/cinic/pkg"
)

type IniParams struct {
	Input           string `json:"input"`             // input .ini file path
	Output          string `json:"output"`            // output path for map dumps
	Map             bool   `json:"map"`               // dump as nested JSON map
	AllowGlobals    bool   `json:"allow_globals"`     // records before any section
	AllowEmptyLists bool   `json:"allow_empty_lists"` // lists with zero entries
	Delim           string `json:"delim"`             // section namespace delimiter
	Brackets        string `json:"brackets"`          // list bracket pair
	Verbosity       int    `json:"verbosity"`
}

var iniParams *IniParams

var iniCmd = &cobra.Command{
	Use:   "ini",
	Short: "ini parse tools",
	Run:   iniRun,
}

func init() {
	iniParams = &IniParams{}
	iniCmd.Flags().StringVarP(&iniParams.Input, "input", "i", "", "input .ini file path")
	iniCmd.Flags().StringVarP(&iniParams.Output, "output", "o", "", "output path for --map dump (default stdout)")
	iniCmd.Flags().BoolVarP(&iniParams.Map, "map", "m", false, "dump the parsed file as a nested JSON map")
	iniCmd.Flags().BoolVar(&iniParams.AllowGlobals, "allow-globals", false, "permit records before any section")
	iniCmd.Flags().BoolVar(&iniParams.AllowEmptyLists, "allow-empty-lists", false, "permit lists with no entries")
	iniCmd.Flags().StringVar(&iniParams.Delim, "delimiter", ".", "section namespace delimiter (one char)")
	iniCmd.Flags().StringVar(&iniParams.Brackets, "brackets", "[]", "list bracket pair (two chars: open then close)")
	iniCmd.Flags().CountVarP(&iniParams.Verbosity, "verbose", "v", "increase parser trace verbosity")
}

func iniRun(cmd *cobra.Command, args []string) {
	if len(iniParams.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(iniParams.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}
	if len(iniParams.Brackets) != 2 {
		fmt.Fprintln(os.Stderr, "brackets must be exactly two characters (open then close)")
		os.Exit(1)
	}

	cfg := ini.Config{
		AllowGlobalRecords: iniParams.AllowGlobals,
		AllowEmptyLists:    iniParams.AllowEmptyLists,
		Delim:              iniParams.Delim,
		Brackets:           [2]byte{iniParams.Brackets[0], iniParams.Brackets[1]},
	}
	parser, err := ini.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if iniParams.Verbosity > 0 {
		parser.WithLogger(funcr.New(func(prefix, args string) {
			fmt.Fprintln(os.Stderr, prefix, args)
		}, funcr.Options{Verbosity: iniParams.Verbosity}))
	}

	if iniParams.Map {
		dumpMap(parser, cfg)
		return
	}

	code, err := parser.ParseFile(iniParams.Input, func(ln uint32, list ini.ListState, section, k, v string) int {
		fmt.Printf("called [%d]: [%s], %s=%s, list=%d\n", ln, section, k, v, list)
		return 0
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if code != 0 {
		os.Exit(code)
	}
}

// dumpMap parses the input into a nested map and renders it as JSON to
// stdout or to the --output path.
func dumpMap(parser *ini.Parser, cfg ini.Config) {
	builder := ini.NewMapBuilder(cfg)
	if _, err := parser.ParseFile(iniParams.Input, builder.Callback); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(builder.Root(), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if iniParams.Output == "" {
		fmt.Println(string(data))
		return
	}
	if err := pkg.WriteFile(iniParams.Output, append(data, '\n')); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
