package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ryl/internal/diag"
	"ryl/internal/diagfmt"
	"ryl/internal/driver"
	"ryl/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Check a ryl file or project directory",
	Long: `Check parses the given file, loads its module files and resolves every
import. With a directory, every top-level *.ryl file is checked as an
independent compilation. Without a path, the entry file comes from the
nearest ryl.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short)")
	checkCmd.Flags().Bool("disk-cache", false, "cache module file lookups on disk")
	checkCmd.Flags().Int("jobs", 0, "parallel compilations in directory mode (0 = all CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "short" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	target, crateName, isDir, err := resolveTarget(args)
	if err != nil {
		return err
	}

	opts := driver.Options{
		CrateName:      crateName,
		MaxDiagnostics: maxDiagnostics,
	}
	if withCache, _ := cmd.Flags().GetBool("disk-cache"); withCache {
		cache, err := driver.OpenDiskCache()
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	render := func(res *driver.Result) {
		switch format {
		case "short":
			fmt.Fprint(os.Stderr, diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, true))
		default:
			diagfmt.PrettyBag(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd),
				PathMode:  diagfmt.PathModeAuto,
				ShowNotes: true,
			})
		}
		if !quiet {
			summarize(res)
		}
	}

	if isDir {
		results, err := driver.CheckDir(context.Background(), target, opts, jobs)
		if err != nil {
			return err
		}
		failed := false
		for _, r := range results {
			render(r.Result)
			failed = failed || r.Result.Bag.HasErrors()
		}
		if failed {
			return errCheckFailed
		}
		return nil
	}

	res, err := driver.Check(target, opts)
	if err != nil {
		return err
	}
	render(res)
	if res.Bag.HasErrors() {
		return errCheckFailed
	}
	return nil
}

// resolveTarget выбирает, что проверять: аргумент (файл или каталог)
// либо входной файл из ближайшего ryl.toml.
func resolveTarget(args []string) (target, crateName string, isDir bool, err error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", false, err
		}
		manifest, ok, err := project.FindRylToml(wd)
		if err != nil {
			return "", "", false, err
		}
		if !ok {
			return "", "", false, fmt.Errorf("no input file and no ryl.toml found")
		}
		m, err := project.LoadManifest(manifest)
		if err != nil {
			return "", "", false, err
		}
		return filepath.Join(filepath.Dir(manifest), m.Entry), m.Name, false, nil
	}

	target = args[0]
	info, err := os.Stat(target)
	if err != nil {
		// несуществующий файл отдаём конвейеру: он выдаст IO-диагностику
		return target, crateNameFor(filepath.Dir(target)), false, nil
	}
	return target, crateNameFor(target), info.IsDir(), nil
}

// crateNameFor берёт имя пакета из ближайшего ryl.toml, если он есть.
func crateNameFor(start string) string {
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}
	manifest, ok, err := project.FindRylToml(start)
	if err != nil || !ok {
		return ""
	}
	m, err := project.LoadManifest(manifest)
	if err != nil {
		return ""
	}
	return m.Name
}

func summarize(res *driver.Result) {
	errs, warns := 0, 0
	for _, d := range res.Bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %d error(s), %d warning(s)\n", res.EntryPath, errs, warns)
}
