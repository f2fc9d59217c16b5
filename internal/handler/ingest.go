package handler

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/abhishek622/moodgap/internal/journal"
	"github.com/abhishek622/moodgap/pkg/model"
	"github.com/abhishek622/moodgap/pkg/response"
)

// Ingest accepts a Daylio CSV export and reports the calendar dates since
// the latest entry that have no log entry
// POST /log
func (app *Handler) Ingest(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, app.MaxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			app.Logger.Sugar().Warnw("ingest: body too large", "request_id", RequestID(c), "limit", app.MaxBodyBytes)
			response.Fail(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "request body too large")
			return
		}
		app.Logger.Sugar().Errorw("ingest: read body failed", "request_id", RequestID(c), "err", err)
		response.InternalError(c)
		return
	}

	if !utf8.Valid(body) {
		app.Logger.Sugar().Warnw("ingest: body is not valid utf-8", "request_id", RequestID(c))
		response.BadRequest(c, response.CodeEncodingError, "request body is not valid UTF-8")
		return
	}

	entries, err := journal.Parse(string(body))
	if err != nil {
		app.Logger.Sugar().Warnw("ingest: csv parse failed", "request_id", RequestID(c), "err", err)
		response.BadRequest(c, response.CodeParseError, err.Error())
		return
	}

	today := app.today()
	missing, err := journal.MissingDates(entries, today)
	if err != nil {
		switch {
		case errors.Is(err, journal.ErrNoEntries):
			app.Logger.Sugar().Warnw("ingest: no entries in upload", "request_id", RequestID(c))
			response.UnprocessableEntity(c, response.CodeNoEntries, "export contains no entries")
		case errors.Is(err, journal.ErrInvalidDate):
			app.Logger.Sugar().Warnw("ingest: bad entry date", "request_id", RequestID(c), "err", err)
			response.UnprocessableEntity(c, response.CodeInvalidEntryDate, err.Error())
		default:
			app.Logger.Sugar().Errorw("ingest: gap detection failed", "request_id", RequestID(c), "err", err)
			response.InternalError(c)
		}
		return
	}

	// MissingDates has already validated every entry date.
	latest, _ := journal.Latest(entries)

	report := model.IngestReport{
		MissingDates:    make([]string, 0, len(missing)),
		GapDays:         len(missing),
		LatestEntryDate: latest.Format(journal.DateLayout),
		EntryCount:      len(entries),
	}
	for _, d := range missing {
		report.MissingDates = append(report.MissingDates, d.Format(journal.DateLayout))
	}

	app.Logger.Sugar().Infow("ingest: ok", "request_id", RequestID(c),
		"entries", report.EntryCount, "latest", report.LatestEntryDate, "gap_days", report.GapDays)
	response.OK(c, report)
}
