// Package report renders a student's weekly program as a spreadsheet: one
// sheet of exercises per training day, one of the meal plan, one of the
// supplement schedule. Dangling ids never reach a sheet; the program is
// resolved through the view layer first.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"coachcore/internal/view"
	"coachcore/pkg/domain"
)

// ProgramWorkbook builds the workbook for a resolved program. The caller
// owns closing the returned file.
func ProgramWorkbook(p view.Program) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeExercises(f, p); err != nil {
		return nil, err
	}
	if err := writeMeals(f, p); err != nil {
		return nil, err
	}
	if err := writeSupplements(f, p); err != nil {
		return nil, err
	}
	// The default sheet is replaced by the first one we created.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteProgram renders a resolved program and saves it to path.
func WriteProgram(p view.Program, path string) error {
	f, err := ProgramWorkbook(p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func writeExercises(f *excelize.File, p view.Program) error {
	const sheet = "Exercises"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeader(f, sheet, []string{"Day", "Exercise", "Muscle", "Target"})
	row := 2
	for day := 1; day <= domain.TrainingDays; day++ {
		for _, ex := range p.DayExercises[day] {
			f.SetCellValue(sheet, cell(1, row), fmt.Sprintf("Day %d", day))
			f.SetCellValue(sheet, cell(2, row), ex.Name)
			f.SetCellValue(sheet, cell(3, row), ex.Muscle)
			f.SetCellValue(sheet, cell(4, row), ex.Target)
			row++
		}
	}
	for _, ex := range p.Exercises {
		f.SetCellValue(sheet, cell(1, row), "Overall")
		f.SetCellValue(sheet, cell(2, row), ex.Name)
		f.SetCellValue(sheet, cell(3, row), ex.Muscle)
		f.SetCellValue(sheet, cell(4, row), ex.Target)
		row++
	}
	return nil
}

func writeMeals(f *excelize.File, p view.Program) error {
	const sheet = "Diet"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeader(f, sheet, []string{"Day", "Slot", "Meal", "Description"})
	row := 2
	for _, group := range view.GroupMeals(p.Meals) {
		for _, slot := range group.Slots {
			for _, meal := range slot.Meals {
				f.SetCellValue(sheet, cell(1, row), string(group.Day))
				f.SetCellValue(sheet, cell(2, row), string(slot.Type))
				f.SetCellValue(sheet, cell(3, row), meal.Name)
				f.SetCellValue(sheet, cell(4, row), meal.Description)
				row++
			}
		}
	}
	return nil
}

func writeSupplements(f *excelize.File, p view.Program) error {
	const sheet = "Supplements"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	setHeader(f, sheet, []string{"Kind", "Name", "Dosage", "Timing"})
	row := 2
	for _, s := range p.Supplements {
		writeSupplementRow(f, sheet, row, s)
		row++
	}
	for _, s := range p.Vitamins {
		writeSupplementRow(f, sheet, row, s)
		row++
	}
	return nil
}

func writeSupplementRow(f *excelize.File, sheet string, row int, s domain.Supplement) {
	f.SetCellValue(sheet, cell(1, row), string(s.Kind))
	f.SetCellValue(sheet, cell(2, row), s.Name)
	f.SetCellValue(sheet, cell(3, row), s.Dosage)
	f.SetCellValue(sheet, cell(4, row), s.Timing)
}

func setHeader(f *excelize.File, sheet string, titles []string) {
	for i, title := range titles {
		f.SetCellValue(sheet, cell(i+1, 1), title)
	}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
