// =============================================================================
// Entry Form Tool - Edit Command
// =============================================================================
//
// This file defines the 'edit' command: a terminal realization of the
// record-by-record correction loop. It pages through the imported records,
// hand-corrects field values, validates on demand, batch-fills a record
// range, and exports — all against the same core the process command uses.
//
// COMMAND USAGE:
//   entryform edit <input-file>
//
// SESSION COMMANDS:
//   next / n            go to the next record
//   prev / p            go to the previous record
//   jump <N> / j <N>    jump to record N (1-based)
//   show                redisplay the current record
//   set <字段> <值>      set a field on the current record
//   check               validate the current record
//   fill <N> 字段=值 ... overwrite fields on records N..end (asks first)
//   export <path>       validate all records and export
//   help                list commands
//   quit / q            end the session (in-memory edits are discarded
//                       unless exported)
//
// Edits are saved into the current record immediately, so navigation never
// loses pending input.
//
// =============================================================================

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hualiu-nbu/entryform/internal/config"
	"github.com/hualiu-nbu/entryform/internal/exporter"
	"github.com/hualiu-nbu/entryform/internal/importer"
	"github.com/hualiu-nbu/entryform/internal/schema"
	"github.com/hualiu-nbu/entryform/internal/store"
	"github.com/hualiu-nbu/entryform/internal/validation"
)

// editCmd represents the 'edit' command.
var editCmd = &cobra.Command{
	Use:   "edit <input-file>",
	Short: "Interactively page through and correct records",
	Long: `The edit command imports a source file and opens an interactive session
for paging through records, correcting field values, validating, batch
filling and exporting. Type 'help' inside the session for the command list.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args[0], os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// =============================================================================
// SESSION LOOP
// =============================================================================

// runEdit imports the source file and drives the interactive session.
func runEdit(inputPath string, input *os.File) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// The session's export honors the same configuration toggles the
	// process command does.
	opts := exporter.DefaultOptions()
	opts.Banner = !cfg.SkipBanner
	opts.Validate = !cfg.SkipValidation

	records, err := importer.File(inputPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	st := store.New()
	st.Load(records)

	fmt.Printf("已加载: %s\n", inputPath)
	showRecord(st)

	scanner := bufio.NewScanner(input)
	for {
		fmt.Printf("进度: %d / %d > ", st.Cursor()+1, st.Size())
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch command {
		case "next", "n":
			if st.Next() {
				showRecord(st)
			}
		case "prev", "p":
			if st.Prev() {
				showRecord(st)
			}
		case "jump", "j":
			doJump(st, rest)
		case "show":
			showRecord(st)
		case "set":
			doSet(st, rest)
		case "check":
			doCheck(st)
		case "fill":
			doFill(st, rest, scanner)
		case "export":
			doExport(st, rest, opts)
		case "help":
			printHelp()
		case "quit", "q", "exit":
			return nil
		default:
			fmt.Printf("未知命令 %q，输入 help 查看命令列表\n", command)
		}
	}
}

// =============================================================================
// SESSION COMMANDS
// =============================================================================

// showRecord prints the current record with form labels.
func showRecord(st *store.Store) {
	record, ok := st.Current()
	if !ok {
		fmt.Println("没有数据")
		return
	}

	fmt.Printf("--- 记录 %d / %d ---\n", st.Cursor()+1, st.Size())
	for _, f := range schema.Fields() {
		fmt.Printf("  %-8s %s\n", f.Label(), record[f.Key])
	}
}

// doJump parses and executes a 1-based record jump.
func doJump(st *store.Store, arg string) {
	number, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("请输入一个有效的数字")
		return
	}
	if err := st.JumpTo(number); err != nil {
		fmt.Printf("请输入一个介于 1 和 %d 之间的数字\n", st.Size())
		return
	}
	showRecord(st)
}

// doSet writes one field value into the current record.
func doSet(st *store.Store, rest string) {
	key, value, found := strings.Cut(rest, " ")
	if !found {
		fmt.Println("用法: set <字段> <值>")
		return
	}
	value = strings.TrimSpace(value)

	field, ok := schema.FieldByKey(schema.CleanKey(key))
	if !ok {
		fmt.Printf("未知字段 %q\n", key)
		return
	}

	// Datetime values are normalized to the saved form on write; other
	// imported values stay opaque until the operator edits them.
	if field.Kind == schema.KindDateTime {
		t, err := schema.ParseDateTime(value)
		if err != nil {
			fmt.Printf("时间格式应为 %s\n", schema.DateTimeLayout)
			return
		}
		value = schema.FormatDateTime(t)
	}

	if field.Kind == schema.KindChoice && !isChoice(field, value) {
		fmt.Printf("%s 应为: %s\n", field.Key, strings.Join(field.Choices, " / "))
		return
	}

	st.SaveCurrent(map[string]string{field.Key: value})
	showRecord(st)
}

// doCheck validates the current record.
func doCheck(st *store.Store) {
	record, ok := st.Current()
	if !ok {
		fmt.Println("没有数据")
		return
	}

	messages := validation.Validate(record)
	if len(messages) == 0 {
		color.Green("✓ 记录 %d 验证通过", st.Cursor()+1)
		return
	}
	color.Red("✗ 记录 %d 验证错误:", st.Cursor()+1)
	for _, msg := range messages {
		fmt.Printf("    - %s\n", msg)
	}
}

// doFill parses a batch fill, asks for confirmation naming the affected
// field set and record count, and applies it.
func doFill(st *store.Store, rest string, scanner *bufio.Scanner) {
	parts := strings.Fields(rest)
	if len(parts) < 2 {
		fmt.Println("用法: fill <起始记录号> 字段=值 ...")
		return
	}

	from, err := strconv.Atoi(parts[0])
	if err != nil || from < 1 || from > st.Size() {
		fmt.Printf("起始记录号应介于 1 和 %d 之间\n", st.Size())
		return
	}

	values := make(map[string]string, len(parts)-1)
	var keys []string
	for _, pair := range parts[1:] {
		key, value, found := strings.Cut(pair, "=")
		if !found || !schema.IsCanonicalKey(key) || value == "" {
			fmt.Printf("无效的填充项 %q (应为 字段=值)\n", pair)
			return
		}
		values[key] = value
		keys = append(keys, key)
	}

	// Batch fill is irreversible; name the damage before doing it.
	count := st.Size() - from + 1
	fmt.Printf("将覆盖记录 %d..%d 的字段 [%s]，共 %d 条。确认? (y/N) ",
		from, st.Size(), strings.Join(keys, ", "), count)
	if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
		fmt.Println("已取消")
		return
	}

	touched, err := st.ApplyBatch(from-1, values)
	if err != nil {
		fmt.Printf("批量填充失败: %v\n", err)
		return
	}
	color.Green("✓ 已更新 %d 条记录", touched)
	showRecord(st)
}

// doExport validates every record and exports. On a validation failure the
// cursor jumps to the offending record so the operator can fix it.
func doExport(st *store.Store, dest string, opts exporter.Options) {
	err := exporter.Export(st.Records(), dest, opts)
	if err == nil {
		color.Green("✓ 已导出 %d 条记录到 %s", st.Size(), dest)
		return
	}

	var recordErr *validation.RecordError
	if errors.As(err, &recordErr) {
		st.JumpTo(recordErr.Index + 1)
		color.Red("✗ 记录 %d 未通过验证，已跳转:", recordErr.Index+1)
		for _, msg := range recordErr.Messages {
			fmt.Printf("    - %s\n", msg)
		}
		showRecord(st)
		return
	}

	color.Red("✗ 导出失败: %v", err)
}

// isChoice reports whether value is one of the field's fixed choices.
func isChoice(field schema.Field, value string) bool {
	for _, c := range field.Choices {
		if c == value {
			return true
		}
	}
	return false
}

// printHelp lists the session commands.
func printHelp() {
	fmt.Print(`命令:
  next / n            下一条记录
  prev / p            上一条记录
  jump <N> / j <N>    跳转到第 N 条记录
  show                重新显示当前记录
  set <字段> <值>      修改当前记录的字段
  check               验证当前记录
  fill <N> 字段=值 ... 从第 N 条起批量覆盖字段
  export <path>       验证全部记录并导出
  quit / q            退出（未导出的修改将丢失）
`)
}
