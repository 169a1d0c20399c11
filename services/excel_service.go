package services

import (
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService exports a group's expenses and settlements to an Excel file
type ExcelService struct {
	groups      GroupStore
	expenses    GroupExpenseStore
	settlements SettlementStore
}

// NewExcelService creates a new Excel service
func NewExcelService(groups GroupStore, expenses GroupExpenseStore, settlements SettlementStore) *ExcelService {
	return &ExcelService{groups: groups, expenses: expenses, settlements: settlements}
}

// ExportGroupToExcel generates an Excel workbook for a group. Read-only: it
// uses the persisted settlement set as is and does not reconcile.
func (s *ExcelService) ExportGroupToExcel(groupID string) (*excelize.File, string, error) {
	group, err := s.groups.GetGroup(groupID)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.expenses.GetGroupExpenses(groupID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	settlements, err := s.settlements.GetSettlements(groupID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get settlements: %v", err)
	}

	var completed []*models.GroupSettlement
	for _, settlement := range settlements {
		if settlement.Status == models.SettlementCompleted {
			completed = append(completed, settlement)
		}
	}
	sheet := ComputeBalances(expenses, completed)

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, group, sheet); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpensesSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expenses sheet: %v", err)
	}
	if err := s.createSettlementsSheet(f, settlements); err != nil {
		return nil, "", fmt.Errorf("failed to create settlements sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	return style
}

// createSummarySheet creates Sheet 1: per-member net balances
func (s *ExcelService) createSummarySheet(f *excelize.File, group *models.ExpenseGroup, sheet *BalanceSheet) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", "Group")
	f.SetCellValue(sheetName, "B1", group.Name)

	headers := []string{"Member", "Net Balance", "Position"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s3", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A3", "C3", headerStyle(f))

	row := 4
	for _, userID := range sheet.Users() {
		balance := sheet.Get(userID)
		position := "settled up"
		if balance > 0 {
			position = "owes"
		} else if balance < 0 {
			position = "is owed"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), userID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), position)
		row++
	}

	f.SetColWidth(sheetName, "A", "C", 18)
	return nil
}

// createExpensesSheet creates Sheet 2: the expense list with splits
func (s *ExcelService) createExpensesSheet(f *excelize.File, expenses []*models.GroupExpense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Description", "Category", "Paid By", "Amount", "Split Type", "Participant", "Share", "Settled"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "I1", headerStyle(f))

	row := 2
	for _, expense := range expenses {
		date := time.UnixMilli(expense.Date).Format("2006-01-02")
		for _, split := range expense.SplitDetails {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Category)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.PaidBy)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Amount)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.SplitType)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), split.UserID)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), split.Amount)
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), split.Settled)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "I", 14)
	f.SetColWidth(sheetName, "B", "B", 24)
	return nil
}

// createSettlementsSheet creates Sheet 3: pending and completed settlements
func (s *ExcelService) createSettlementsSheet(f *excelize.File, settlements []*models.GroupSettlement) error {
	sheetName := "Settlements"
	f.NewSheet(sheetName)

	headers := []string{"From", "To", "Amount", "Status", "Completed At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle(f))

	for i, settlement := range settlements {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), settlement.FromUserID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), settlement.ToUserID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), settlement.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), settlement.Status)
		if settlement.CompletedAt > 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row),
				time.UnixMilli(settlement.CompletedAt).Format("2006-01-02 15:04"))
		}
	}

	f.SetColWidth(sheetName, "A", "E", 16)
	return nil
}
