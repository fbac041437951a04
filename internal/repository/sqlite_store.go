package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"creativestyle/internal/model"
	"creativestyle/internal/scoring"
)

type submissionRow struct {
	SubmissionID   string    `gorm:"column:submission_id;primaryKey"`
	UserName       string    `gorm:"column:user_name"`
	UserEmail      string    `gorm:"column:user_email"`
	SubmissionTime time.Time `gorm:"column:submission_time;index"`
	IsComplete     bool      `gorm:"column:is_complete;not null;default:false"`
}

func (submissionRow) TableName() string { return "submissions" }

func (r submissionRow) toModel() *model.Submission {
	return &model.Submission{
		ID:             r.SubmissionID,
		UserName:       r.UserName,
		UserEmail:      r.UserEmail,
		SubmissionTime: r.SubmissionTime,
		IsComplete:     r.IsComplete,
	}
}

type responseRow struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID    string    `gorm:"column:submission_id;not null;uniqueIndex:idx_submission_question"`
	QuestionID      string    `gorm:"column:question_id;not null;uniqueIndex:idx_submission_question"`
	NumericResponse *int      `gorm:"column:numeric_response"`
	TextResponse    *string   `gorm:"column:text_response"`
	ResponseTime    time.Time `gorm:"column:response_time"`
}

func (responseRow) TableName() string { return "submission_responses" }

// storedResponse is the read side of responseRow. SQLite does not enforce column
// types, so numeric_response is scanned as text and converted explicitly.
type storedResponse struct {
	SubmissionID    string         `gorm:"column:submission_id"`
	QuestionID      string         `gorm:"column:question_id"`
	NumericResponse sql.NullString `gorm:"column:numeric_response"`
	TextResponse    *string        `gorm:"column:text_response"`
	ResponseTime    time.Time      `gorm:"column:response_time"`
}

func (r storedResponse) toModel() (*model.Response, error) {
	resp := &model.Response{
		SubmissionID: r.SubmissionID,
		QuestionID:   r.QuestionID,
		TextResponse: r.TextResponse,
		ResponseTime: r.ResponseTime,
	}
	if r.NumericResponse.Valid {
		v, err := parseStoredInt(r.NumericResponse.String)
		if err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", scoring.ErrMalformedInput, r.QuestionID, err)
		}
		resp.NumericResponse = &v
	}
	return resp, nil
}

// parseStoredInt accepts integers and integral reals such as "5" or "5.0".
func parseStoredInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integer value %v", f)
	}
	return int(f), nil
}

// NewSQLiteStore opens (and migrates) a SQLite database at path. Use ":memory:" in tests.
func NewSQLiteStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared across calls
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&submissionRow{}, &responseRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Store{
		Submissions: &sqliteSubmissionRepo{db: db},
		Responses:   &sqliteResponseRepo{db: db},
		close:       func(context.Context) error { return sqlDB.Close() },
	}, nil
}

type sqliteSubmissionRepo struct {
	db *gorm.DB
}

func (r *sqliteSubmissionRepo) Create(ctx context.Context, s *model.Submission) error {
	if s.SubmissionTime.IsZero() {
		s.SubmissionTime = time.Now().UTC()
	}
	row := submissionRow{
		SubmissionID:   s.ID,
		UserName:       s.UserName,
		UserEmail:      s.UserEmail,
		SubmissionTime: s.SubmissionTime,
		IsComplete:     s.IsComplete,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *sqliteSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var row submissionRow
	err := r.db.WithContext(ctx).Where("submission_id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *sqliteSubmissionRepo) List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error) {
	q := r.db.WithContext(ctx).Model(&submissionRow{})
	if filter.Complete != nil {
		q = q.Where("is_complete = ?", *filter.Complete)
	}
	if filter.From != nil {
		q = q.Where("submission_time >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("submission_time <= ?", *filter.To)
	}

	var rows []submissionRow
	if err := q.Order("submission_time DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	subs := make([]*model.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toModel())
	}
	return subs, nil
}

func (r *sqliteSubmissionRepo) MarkComplete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&submissionRow{}).
		Where("submission_id = ?", id).
		Update("is_complete", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteSubmissionRepo) Count(ctx context.Context) (int64, int64, error) {
	var total, completed int64
	if err := r.db.WithContext(ctx).Model(&submissionRow{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&submissionRow{}).Where("is_complete = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

type sqliteResponseRepo struct {
	db *gorm.DB
}

func (r *sqliteResponseRepo) Save(ctx context.Context, resp *model.Response) error {
	if resp.ResponseTime.IsZero() {
		resp.ResponseTime = time.Now().UTC()
	}
	row := responseRow{
		SubmissionID:    resp.SubmissionID,
		QuestionID:      resp.QuestionID,
		NumericResponse: resp.NumericResponse,
		TextResponse:    resp.TextResponse,
		ResponseTime:    resp.ResponseTime,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "submission_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"numeric_response", "text_response", "response_time"}),
	}).Create(&row).Error
}

func (r *sqliteResponseRepo) GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.Response, error) {
	var rows []storedResponse
	err := r.db.WithContext(ctx).
		Model(&responseRow{}).
		Where("submission_id = ?", submissionID).
		Order("response_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*model.Response, 0, len(rows))
	for _, row := range rows {
		resp, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (r *sqliteResponseRepo) GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&submissionRow{}).Where("submission_id = ?", submissionID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	rows, err := r.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	return numericMap(rows), nil
}
