// Command osmem-inspect drives an allocator.Allocator through a script
// of allocate/free/reallocate operations and prints the resulting block
// list, optionally dumping or loading a JSON snapshot of it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/orizon-lang/osmem/internal/allocator"
	icli "github.com/orizon-lang/osmem/internal/cli"
	ierrors "github.com/orizon-lang/osmem/internal/errors"
)

const toolName = "osmem-inspect"

var usageCommand = icli.CommandInfo{
	Name:        toolName,
	Usage:       toolName + " [OPTIONS] [--init-config FILE]",
	Description: "drives a block allocator through a script and prints its block list",
	Examples: []string{
		toolName + " --script ops.txt --dump snapshot.json",
		toolName + " --load snapshot.json",
		toolName + " --config osmem.json --verbose --script ops.txt",
		toolName + " --init-config osmem.json",
	},
	Flags: []icli.FlagInfo{
		{Name: "script", Usage: "path to a script of alloc/free/realloc operations"},
		{Name: "dump", Usage: "write a JSON block-list snapshot to this path after running the script"},
		{Name: "load", Usage: "load and validate a previously dumped JSON block-list snapshot, then exit"},
		{Name: "config", Usage: "path to a CLI config file (see --init-config)"},
		{Name: "init-config", Usage: "write a default config to the path given as the first positional argument, then exit"},
		{Name: "verbose", Usage: "log each script operation as it runs", Default: "false"},
		{Name: "debug", Usage: "log internal script-parsing detail", Default: "false"},
		{Name: "version", Short: "v", Usage: "show version information"},
		{Name: "json", Usage: "output version in JSON format"},
		{Name: "help", Short: "h", Usage: "show this help"},
	},
}

func main() {
	var (
		showVersion bool
		showHelp    bool
		jsonOutput  bool
		scriptPath  string
		dumpPath    string
		loadPath    string
		configPath  string
		initConfig  bool
		verboseFlag bool
		debugFlag   bool
	)

	flag.BoolVar(&showVersion, "version", false, "show version information")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.BoolVar(&showHelp, "help", false, "show help information")
	flag.BoolVar(&jsonOutput, "json", false, "output version in JSON format")
	flag.StringVar(&scriptPath, "script", "", "path to a script of alloc/free/realloc operations")
	flag.StringVar(&dumpPath, "dump", "", "write a JSON block-list snapshot to this path after running the script")
	flag.StringVar(&loadPath, "load", "", "load and validate a previously dumped JSON block-list snapshot, then exit")
	flag.StringVar(&configPath, "config", "", "path to a CLI config file")
	flag.BoolVar(&initConfig, "init-config", false, "write a default config to the first positional argument, then exit")
	flag.BoolVar(&verboseFlag, "verbose", false, "log each script operation as it runs")
	flag.BoolVar(&debugFlag, "debug", false, "log internal script-parsing detail")

	flag.Usage = func() {
		icli.PrintCommandUsage(toolName, usageCommand)
	}

	flag.Parse()

	if showHelp {
		icli.PrintCommandUsage(toolName, usageCommand)
		icli.ExitWithCode(0, "")
	}

	if showVersion {
		icli.PrintVersion(toolName, jsonOutput)
		icli.ExitWithCode(0, "")
	}

	cfg, err := icli.LoadConfig(configPath)
	if err != nil {
		icli.ExitWithError("%v", err)
	}

	if initConfig {
		if err := icli.ValidateArgs(flag.Args(), 1, toolName+" --init-config FILE"); err != nil {
			icli.ExitWithError("%v", err)
		}

		if err := cfg.SaveConfig(flag.Args()[0]); err != nil {
			icli.ExitWithError("failed to write config: %v", err)
		}

		icli.ExitWithCode(0, "")
	}

	if verboseFlag {
		cfg.Verbose = true
	}

	if debugFlag {
		cfg.Debug = true
	}

	logger := icli.NewLogger(cfg.Verbose, cfg.Debug)

	if loadPath != "" {
		runLoad(loadPath, logger)
		return
	}

	a := allocator.New()
	var ptrs []unsafe.Pointer

	if scriptPath != "" {
		logger.Info("running script %s", scriptPath)

		if err := runScript(a, scriptPath, &ptrs, logger); err != nil {
			icli.HandleError(fmt.Errorf("script failed: %w", err), logger)
		}
	}

	snap := a.Snapshot()
	printSnapshot(snap)

	if dumpPath != "" {
		data, err := allocator.MarshalSnapshot(snap)
		if err != nil {
			icli.HandleError(fmt.Errorf("failed to marshal snapshot: %w", err), logger)
		}

		if err := os.WriteFile(dumpPath, data, 0o644); err != nil {
			icli.HandleError(fmt.Errorf("failed to write snapshot: %w", err), logger)
		}

		logger.Debug("wrote snapshot to %s", dumpPath)
	}
}

func runScript(a *allocator.Allocator, path string, ptrs *[]unsafe.Pointer, logger *icli.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		logger.Debug("line %d: %s", lineNo, line)

		switch fields[0] {
		case "alloc":
			n, err := parsePositiveSize(fields[1], lineNo, "alloc")
			if err != nil {
				return err
			}

			p := a.Allocate(n)
			*ptrs = append(*ptrs, p)
			logger.Info("alloc(%d) -> index %d", n, len(*ptrs)-1)
		case "zalloc":
			count, err := parsePositiveSize(fields[1], lineNo, "zalloc count")
			if err != nil {
				return err
			}

			elem, err := parsePositiveSize(fields[2], lineNo, "zalloc elem")
			if err != nil {
				return err
			}

			p := a.AllocateZero(count, elem)
			*ptrs = append(*ptrs, p)
			logger.Info("zalloc(%d, %d) -> index %d", count, elem, len(*ptrs)-1)
		case "free":
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			if idx < 0 || idx >= len(*ptrs) {
				return fmt.Errorf("line %d: index %d out of range", lineNo, idx)
			}

			if (*ptrs)[idx] == nil {
				logger.Warn("line %d: free(index %d) targets an already-freed or never-allocated index", lineNo, idx)
			}

			a.Free((*ptrs)[idx])
			(*ptrs)[idx] = nil
			logger.Info("free(index %d)", idx)
		case "realloc":
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			if idx < 0 || idx >= len(*ptrs) {
				return fmt.Errorf("line %d: index %d out of range", lineNo, idx)
			}

			n, err := parsePositiveSize(fields[2], lineNo, "realloc")
			if err != nil {
				return err
			}

			(*ptrs)[idx] = a.Reallocate((*ptrs)[idx], n)
			logger.Info("realloc(index %d, %d)", idx, n)
		default:
			return fmt.Errorf("line %d: unknown operation %q", lineNo, fields[0])
		}
	}

	return scanner.Err()
}

// parsePositiveSize parses a script operand as a byte count, rejecting.
// zero and negative values with internal/errors.InvalidSize before they.
// ever reach the allocator.
func parsePositiveSize(field string, lineNo int, context string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", lineNo, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("line %d: %w", lineNo, ierrors.InvalidSize(uintptr(n), context))
	}

	return n, nil
}

func printSnapshot(snap allocator.BlockSnapshot) {
	fmt.Printf("schema_version: %s\n", snap.SchemaVersion)
	fmt.Printf("%-18s %-12s %s\n", "ADDRESS", "SIZE", "STATUS")

	for _, b := range snap.Blocks {
		fmt.Printf("0x%016x %-12d %s\n", b.Address, b.Size, b.Status)
	}
}

func runLoad(path string, logger *icli.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		icli.HandleError(fmt.Errorf("failed to read snapshot: %w", err), logger)
	}

	snap, err := allocator.LoadSnapshot(data)
	if err != nil {
		icli.HandleError(fmt.Errorf("failed to load snapshot: %w", err), logger)
	}

	printSnapshot(snap)
}
