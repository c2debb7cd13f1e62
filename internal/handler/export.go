package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// ExportQuestions обрабатывает GET /questions/export?format=csv|xlsx
func (h *TriviaHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.triviaService.ListAllQuestions()
	if err != nil {
		_ = c.Error(err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV.
// Статус уже отправлен, поэтому ошибки записи только логируются.
func (h *TriviaHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка записи CSV")
		return
	}

	if err := writeCSV(c.Writer, questions); err != nil {
		log.Error().Err(err).Int("questions", len(questions)).Msg("[TriviaHandler] Ошибка записи CSV")
	}
}

// writeCSV пишет заголовок и строки вопросов в w
func writeCSV(w io.Writer, questions []entity.Question) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, q := range questions {
		err := writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			strconv.Itoa(q.Category),
			strconv.Itoa(q.Difficulty),
		})
		if err != nil {
			return fmt.Errorf("write csv row %d: %w", q.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// exportXLSX выгружает вопросы в Excel через StreamWriter
func (h *TriviaHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка переименования листа")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка создания StreamWriter")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, name := range exportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка записи заголовков")
	}

	for i, q := range questions {
		rowNum := i + 2 // 1 - заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Question), sanitizeForExcel(q.Answer), q.Category, q.Difficulty}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			log.Error().Err(err).Int("row", rowNum).Msg("[TriviaHandler] Ошибка записи строки")
		}
	}

	if err := sw.Flush(); err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка при Flush")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("[TriviaHandler] Ошибка записи Excel в response")
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
