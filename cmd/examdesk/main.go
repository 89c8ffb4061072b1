package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arijitsen/examdesk/internal/alloc"
	"github.com/arijitsen/examdesk/internal/backup"
	"github.com/arijitsen/examdesk/internal/config"
	"github.com/arijitsen/examdesk/internal/export"
	"github.com/arijitsen/examdesk/internal/logging"
	"github.com/arijitsen/examdesk/internal/pay"
	"github.com/arijitsen/examdesk/internal/store"
	"github.com/arijitsen/examdesk/internal/tui"
	"github.com/arijitsen/examdesk/internal/venuecsv"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "examdesk",
	Short: "Exam venue personnel allocation tracker",
	Long: "examdesk records Centre Coordinator and EY Personnel allocations against\n" +
		"exam venues, dates and shifts, flags conflicting entries, computes\n" +
		"remuneration and exports reports.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if l, err := logging.Open(); err == nil {
			logger = l
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Manage exams",
}

var examCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an exam and make it current",
	RunE:  runExamCreate,
}

var examListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exams",
	RunE:  runExamList,
}

var examUseCmd = &cobra.Command{
	Use:   "use <name> <year>",
	Short: "Select the exam subsequent commands act on",
	Args:  cobra.ExactArgs(2),
	RunE:  runExamUse,
}

var examDeleteCmd = &cobra.Command{
	Use:   "delete <name> <year>",
	Short: "Delete an exam that has no allocations",
	Args:  cobra.ExactArgs(2),
	RunE:  runExamDelete,
}

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Manage venues for the current exam",
}

var venuesImportCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import a venue schedule file",
	Args:  cobra.ExactArgs(1),
	RunE:  runVenuesImport,
}

var venuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List venues for the current exam",
	RunE:  runVenuesList,
}

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Allocate a person to a venue, date and shift",
	RunE:  runAllocate,
}

var allocationsCmd = &cobra.Command{
	Use:   "allocations",
	Short: "List allocations for the current exam",
	RunE:  runAllocations,
}

var allocationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an allocation, recording the deletion order and reason",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllocationsDelete,
}

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Show the remuneration breakdown",
	RunE:  runPay,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports",
}

var exportExcelCmd = &cobra.Command{
	Use:   "excel <path>",
	Short: "Write the report workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportExcel,
}

var exportIcalCmd = &cobra.Command{
	Use:   "ical <path>",
	Short: "Write a person's duty roster as an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportIcal,
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a dataset snapshot to the backup directory",
	RunE:  runBackup,
}

var backupSchemaCmd = &cobra.Command{
	Use:   "schema <path>",
	Short: "Write the JSON schema of the backup file format",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupSchema,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the dataset with a backup snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the effective remuneration rates",
	RunE:  runRates,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open the config file in your editor",
	RunE:  runConfig,
}

func init() {
	examCreateCmd.Flags().String("name", "", "exam name")
	examCreateCmd.Flags().String("year", "", "exam year")
	examCreateCmd.Flags().String("from", "", "first exam date")
	examCreateCmd.Flags().String("to", "", "last exam date")
	examCreateCmd.MarkFlagRequired("name")
	examCreateCmd.MarkFlagRequired("year")

	allocateCmd.Flags().String("person", "", "person to allocate")
	allocateCmd.Flags().String("role", "coordinator", "coordinator or ey")
	allocateCmd.Flags().String("venue", "", "venue name")
	allocateCmd.Flags().String("date", "", "date (YYYY-MM-DD or natural phrase)")
	allocateCmd.Flags().String("shift", "", "morning, evening or full-day")
	allocateCmd.Flags().Bool("mock", false, "mock test sitting")
	allocateCmd.Flags().String("order-no", "", "sanction order number")
	allocateCmd.Flags().String("page-no", "", "sanction order page number")
	allocateCmd.Flags().BoolP("interactive", "i", false, "enter the allocation through a form")

	allocationsDeleteCmd.Flags().String("order-no", "", "deletion order number")
	allocationsDeleteCmd.Flags().String("reason", "", "deletion reason")
	allocationsDeleteCmd.MarkFlagRequired("order-no")
	allocationsDeleteCmd.MarkFlagRequired("reason")

	payCmd.Flags().String("person", "", "limit the breakdown to one person")

	exportIcalCmd.Flags().String("person", "", "whose roster to export")
	exportIcalCmd.MarkFlagRequired("person")

	backupCmd.Flags().Bool("notify", false, "send a desktop notification when done")

	examCmd.AddCommand(examCreateCmd, examListCmd, examUseCmd, examDeleteCmd)
	venuesCmd.AddCommand(venuesImportCmd, venuesListCmd)
	allocationsCmd.AddCommand(allocationsDeleteCmd)
	exportCmd.AddCommand(exportExcelCmd, exportIcalCmd)
	backupCmd.AddCommand(backupSchemaCmd)

	rootCmd.AddCommand(examCmd, venuesCmd, allocateCmd, allocationsCmd,
		payCmd, exportCmd, backupCmd, restoreCmd, ratesCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func currentExam(db *store.DB) (*store.Exam, error) {
	exam, err := db.CurrentExam()
	if err != nil {
		return nil, fmt.Errorf("resolving current exam: %w", err)
	}
	if exam == nil {
		return nil, fmt.Errorf("no exam selected — run 'examdesk exam create' or 'examdesk exam use'")
	}
	return exam, nil
}

func runExamCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	year, _ := cmd.Flags().GetString("year")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	exam := store.Exam{Name: name, Year: year}
	for _, f := range []struct {
		value  string
		target *string
	}{{from, &exam.StartDate}, {to, &exam.EndDate}} {
		if f.value == "" {
			continue
		}
		d, err := tui.ParseDate(f.value)
		if err != nil {
			return err
		}
		*f.target = d.Format("2006-01-02")
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	id, err := db.CreateExam(&exam)
	if err != nil {
		return fmt.Errorf("creating exam: %w", err)
	}
	if err := db.SetCurrentExam(id); err != nil {
		return fmt.Errorf("selecting exam: %w", err)
	}

	logger.Info("exam created", zap.String("exam", exam.Key()), zap.Int64("id", id))
	fmt.Printf("Created exam %s (now current)\n", exam.Key())
	return nil
}

func runExamList(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exams, err := db.ListExams()
	if err != nil {
		return err
	}
	if len(exams) == 0 {
		fmt.Println("No exams yet.")
		return nil
	}

	current, err := db.CurrentExam()
	if err != nil {
		return err
	}

	for _, e := range exams {
		marker := "  "
		if current != nil && current.ID == e.ID {
			marker = "* "
		}
		dates := ""
		if e.StartDate != "" {
			dates = fmt.Sprintf("  %s – %s", e.StartDate, e.EndDate)
		}
		count, err := db.CountAllocations(e.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%s%-30s%s  (%d allocations)\n", marker, e.Key(), dates, count)
	}
	return nil
}

func runExamUse(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := db.GetExam(args[0], args[1])
	if err != nil {
		return err
	}
	if exam == nil {
		return fmt.Errorf("exam %s-%s not found", args[0], args[1])
	}
	if err := db.SetCurrentExam(exam.ID); err != nil {
		return err
	}
	fmt.Printf("Current exam: %s\n", exam.Key())
	return nil
}

func runExamDelete(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := db.GetExam(args[0], args[1])
	if err != nil {
		return err
	}
	if exam == nil {
		return fmt.Errorf("exam %s-%s not found", args[0], args[1])
	}
	if err := db.DeleteExam(exam.ID); err != nil {
		return err
	}

	logger.Info("exam deleted", zap.String("exam", exam.Key()))
	fmt.Printf("Deleted exam %s\n", exam.Key())
	return nil
}

func runVenuesImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening schedule file: %w", err)
	}
	defer f.Close()

	rows, err := venuecsv.Parse(f)
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	venueIDs := make(map[string]int64)
	for _, row := range rows {
		id, ok := venueIDs[row.Venue]
		if !ok {
			id, err = db.UpsertVenue(&store.Venue{
				ExamID:     exam.ID,
				Name:       row.Venue,
				CentreCode: row.CentreCode,
				Address:    row.Address,
				Capacity:   cfg.Venues.DefaultCapacity,
			})
			if err != nil {
				return err
			}
			venueIDs[row.Venue] = id
		}
		if err := db.InsertSession(&store.Session{VenueID: id, Date: row.Date, Shift: row.Shift}); err != nil {
			return err
		}
	}

	logger.Info("venues imported",
		zap.String("exam", exam.Key()),
		zap.Int("venues", len(venueIDs)),
		zap.Int("sessions", len(rows)))
	fmt.Printf("Imported %d venues with %d sessions into %s\n", len(venueIDs), len(rows), exam.Key())
	return nil
}

func runVenuesList(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	venues, err := db.ListVenues(exam.ID)
	if err != nil {
		return err
	}
	if len(venues) == 0 {
		fmt.Println("No venues imported for this exam.")
		return nil
	}

	fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("Venues for %s", exam.Key())))
	for _, v := range venues {
		sessions, err := db.ListSessions(v.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  %-30s  code %-6s  capacity %d  %d sessions\n",
			v.Name, v.CentreCode, v.Capacity, len(sessions))
	}
	return nil
}

func runAllocate(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var candidate alloc.Allocation
	if interactive {
		result, err := runAllocateForm(db, exam)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("Cancelled.")
			return nil
		}
		candidate = alloc.Allocation{
			Person: result.Person, Role: result.Role, Venue: result.Venue,
			Date: result.Date, Shift: result.Shift, MockTest: result.MockTest,
			OrderNo: result.OrderNo, PageNo: result.PageNo,
		}
	} else {
		candidate, err = allocationFromFlags(cmd)
		if err != nil {
			return err
		}
	}
	candidate.ExamID = exam.ID

	existing, err := db.ListAllocations(exam.ID)
	if err != nil {
		return err
	}

	capacity := cfg.Venues.DefaultCapacity
	if v, err := db.GetVenue(exam.ID, candidate.Venue); err != nil {
		return err
	} else if v != nil {
		capacity = v.Capacity
	}

	if conflict := alloc.Check(candidate, existing, capacity); conflict != nil {
		logger.Warn("allocation rejected",
			zap.String("exam", exam.Key()),
			zap.String("person", candidate.Person),
			zap.String("reason", conflict.Reason.String()))
		fmt.Println(tui.ErrorStyle.Render("Rejected: ") + conflict.Error())
		return fmt.Errorf("allocation conflict: %s", conflict.Reason)
	}

	id, err := db.InsertAllocation(&candidate)
	if err != nil {
		return err
	}

	logger.Info("allocation created",
		zap.String("exam", exam.Key()),
		zap.Int64("id", id),
		zap.String("person", candidate.Person),
		zap.String("venue", candidate.Venue),
		zap.String("date", candidate.DateKey()),
		zap.String("shift", string(candidate.Shift)))
	fmt.Println(tui.SuccessStyle.Render("Allocated: ") +
		fmt.Sprintf("%s → %s on %s (%s) [#%d]",
			candidate.Person, candidate.Venue, candidate.DateKey(), candidate.Shift.Label(), id))
	return nil
}

func allocationFromFlags(cmd *cobra.Command) (alloc.Allocation, error) {
	var a alloc.Allocation

	person, _ := cmd.Flags().GetString("person")
	venue, _ := cmd.Flags().GetString("venue")
	if person == "" || venue == "" {
		return a, fmt.Errorf("--person and --venue are required (or use --interactive)")
	}

	roleStr, _ := cmd.Flags().GetString("role")
	role, err := alloc.ParseRole(roleStr)
	if err != nil {
		return a, err
	}

	shiftStr, _ := cmd.Flags().GetString("shift")
	shift, err := alloc.ParseShift(shiftStr)
	if err != nil {
		return a, err
	}

	dateStr, _ := cmd.Flags().GetString("date")
	date, err := tui.ParseDate(dateStr)
	if err != nil {
		return a, err
	}

	a.Person = person
	a.Role = role
	a.Venue = venue
	a.Date = date
	a.Shift = shift
	a.MockTest, _ = cmd.Flags().GetBool("mock")
	a.OrderNo, _ = cmd.Flags().GetString("order-no")
	a.PageNo, _ = cmd.Flags().GetString("page-no")
	return a, nil
}

func runAllocateForm(db *store.DB, exam *store.Exam) (*tui.FormResult, error) {
	venues, err := db.ListVenues(exam.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(venues))
	for i, v := range venues {
		names[i] = v.Name
	}

	form := tui.NewForm(exam.Key(), names)
	p := tea.NewProgram(form)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}
	return form.Result(), nil
}

func runAllocations(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	allocations, err := db.ListAllocations(exam.ID)
	if err != nil {
		return err
	}
	if len(allocations) == 0 {
		fmt.Println("No allocations yet.")
		return nil
	}

	fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("Allocations for %s", exam.Key())))
	for _, a := range allocations {
		mock := ""
		if a.MockTest {
			mock = "  [mock]"
		}
		ref := ""
		if a.OrderNo != "" {
			ref = tui.DimStyle.Render(fmt.Sprintf("  (order %s p.%s)", a.OrderNo, a.PageNo))
		}
		fmt.Printf("  #%-4d %s  %-8s  %-25s  %-20s  %s%s%s\n",
			a.ID, a.DateKey(), a.Shift.Label(), a.Person, a.Role.Label(), a.Venue, mock, ref)
	}
	fmt.Printf("\nTotal: %d allocations\n", len(allocations))
	return nil
}

func runAllocationsDelete(cmd *cobra.Command, args []string) error {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return fmt.Errorf("invalid allocation id %q", args[0])
	}
	orderNo, _ := cmd.Flags().GetString("order-no")
	reason, _ := cmd.Flags().GetString("reason")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.DeleteAllocation(id, orderNo, reason); err != nil {
		return err
	}

	logger.Info("allocation deleted",
		zap.Int64("id", id),
		zap.String("deletion_order_no", orderNo),
		zap.String("reason", reason))
	fmt.Printf("Deleted allocation #%d (order %s)\n", id, orderNo)
	return nil
}

func runPay(cmd *cobra.Command, args []string) error {
	person, _ := cmd.Flags().GetString("person")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	allocations, err := db.ListAllocations(exam.ID)
	if err != nil {
		return err
	}
	if len(allocations) == 0 {
		fmt.Println("No allocations to pay.")
		return nil
	}

	report := pay.Compute(allocations, cfg.Rates)

	fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("Remuneration for %s", exam.Key())))
	days := report.Days
	if person != "" {
		days = report.ForPerson(person)
		if len(days) == 0 {
			return fmt.Errorf("no allocations for %q", person)
		}
	}
	for _, d := range days {
		fmt.Printf("  %s  %-25s  %-20s  %d shift(s)  %-15s  ₹%d\n",
			d.Date, d.Person, d.Role.Label(), d.Shifts, d.Kind, d.Amount)
	}

	fmt.Println()
	if person == "" {
		for _, t := range report.Totals {
			fmt.Printf("  %-25s  %d day(s)  ₹%d\n", t.Person, t.Days, t.Amount)
		}
		fmt.Printf("\nGrand total: ₹%d\n", report.Total())
	} else {
		total := 0
		for _, d := range days {
			total += d.Amount
		}
		fmt.Printf("Total for %s: ₹%d\n", person, total)
	}
	return nil
}

func runExportExcel(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	allocations, err := db.ListAllocations(exam.ID)
	if err != nil {
		return err
	}
	if len(allocations) == 0 {
		return fmt.Errorf("no allocations to export")
	}

	report := pay.Compute(allocations, cfg.Rates)
	if err := export.WriteWorkbook(args[0], *exam, allocations, report, cfg.Rates); err != nil {
		return err
	}

	logger.Info("workbook exported", zap.String("exam", exam.Key()), zap.String("path", args[0]))
	fmt.Printf("Wrote %s (%d allocations)\n", args[0], len(allocations))
	return nil
}

func runExportIcal(cmd *cobra.Command, args []string) error {
	person, _ := cmd.Flags().GetString("person")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exam, err := currentExam(db)
	if err != nil {
		return err
	}

	allocations, err := db.ListAllocations(exam.ID)
	if err != nil {
		return err
	}

	var mine []alloc.Allocation
	for _, a := range allocations {
		if a.SamePerson(alloc.Allocation{Person: person}) {
			mine = append(mine, a)
		}
	}
	if len(mine) == 0 {
		return fmt.Errorf("no allocations for %q", person)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating calendar file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCalendar(f, exam.Key(), mine); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d events)\n", args[0], len(mine))
	return nil
}

func runBackup(cmd *cobra.Command, args []string) error {
	notify, _ := cmd.Flags().GetBool("notify")

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	snap, err := db.Snapshot()
	if err != nil {
		return fmt.Errorf("taking snapshot: %w", err)
	}

	dir, err := cfg.BackupDir()
	if err != nil {
		return err
	}
	path, err := backup.Write(dir, snap)
	if err != nil {
		return err
	}

	logger.Info("backup written",
		zap.String("path", path),
		zap.Int("exams", len(snap.Exams)),
		zap.Int("allocations", len(snap.Allocations)))
	fmt.Printf("Backup written to %s\n", path)

	if notify || cfg.Backup.Notify {
		if err := beeep.Notify("examdesk", "Backup written to "+path, ""); err != nil {
			logger.Warn("notification failed", zap.Error(err))
		}
	}
	return nil
}

func runBackupSchema(cmd *cobra.Command, args []string) error {
	data, err := backup.SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	snap, err := backup.Read(args[0])
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Restore(snap); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}

	logger.Info("dataset restored",
		zap.String("path", args[0]),
		zap.Time("snapshot_taken", snap.CreatedAt),
		zap.Int("exams", len(snap.Exams)),
		zap.Int("allocations", len(snap.Allocations)))
	fmt.Printf("Restored %d exams and %d allocations from %s (taken %s)\n",
		len(snap.Exams), len(snap.Allocations), args[0],
		snap.CreatedAt.Local().Format(time.RFC822))
	return nil
}

func runRates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(tui.HeaderStyle.Render("Remuneration rates"))
	fmt.Printf("  Morning shift     ₹%d\n", cfg.Rates.Morning)
	fmt.Printf("  Evening shift     ₹%d\n", cfg.Rates.Evening)
	fmt.Printf("  Full day          ₹%d\n", cfg.Rates.FullDay)
	fmt.Printf("  Combined shifts   ₹%d\n", cfg.Rates.Combined)
	fmt.Printf("  Mock test         ₹%d\n", cfg.Rates.MockTest)
	fmt.Printf("  EY personnel/day  ₹%d\n", cfg.Rates.EYPersonnel)
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault()
	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", path, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, path}, &proc)
	if err != nil {
		fmt.Printf("Could not open editor. Config file is at: %s\n", path)
		return nil
	}
	_, err = process.Wait()
	return err
}
