package task

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// Create inserts a queued task. The creation time is set by the store.
func (s *SQLiteStore) Create(ctx context.Context, id, title, videoURL string) error {
	return s.do(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO tasks (id, created_at, title, video_url, status)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`,
			id, s.now(), title, videoURL, string(StatusQueued),
		)
		if err != nil {
			return errors.Wrap(err, "insert task")
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return errors.WithStack(err)
		}
		if rows == 0 {
			return errors.Wrapf(ErrDuplicateKey, "task %s", id)
		}
		return nil
	})
}

// Update applies the non-nil fields of patch. An empty patch is a no-op.
func (s *SQLiteStore) Update(ctx context.Context, id string, patch Patch) error {
	if patch.IsEmpty() {
		return nil
	}

	// Column names are fixed here; only values are bound from input.
	var sets []string
	var args []any
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.PDFObjectKey != nil {
		sets = append(sets, "pdf_object_key = ?")
		args = append(args, nullString(*patch.PDFObjectKey))
	}
	if patch.Error != nil {
		sets = append(sets, "error = ?")
		args = append(args, nullString(*patch.Error))
	}
	args = append(args, id)
	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	return s.do(ctx, func() error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return errors.Wrap(err, "update task")
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return errors.WithStack(err)
		}
		if rows == 0 {
			return errors.Wrapf(ErrNotFound, "task %s", id)
		}
		return nil
	})
}

// Get retrieves a task by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Task, error) {
	var t *Task
	err := s.do(ctx, func() error {
		row := s.db.QueryRowContext(ctx, `
			SELECT id, created_at, title, video_url, status, pdf_object_key, error
			FROM tasks WHERE id = ?`, id)
		got, err := scanTask(row)
		if err == sql.ErrNoRows {
			return errors.Wrapf(ErrNotFound, "task %s", id)
		}
		if err != nil {
			return errors.Wrap(err, "get task")
		}
		t = got
		return nil
	})
	return t, err
}

// List returns every task, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	err := s.do(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, created_at, title, video_url, status, pdf_object_key, error
			FROM tasks ORDER BY created_at DESC, rowid DESC`)
		if err != nil {
			return errors.Wrap(err, "list tasks")
		}
		defer rows.Close()

		tasks = tasks[:0]
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return errors.Wrap(err, "scan task")
			}
			tasks = append(tasks, t)
		}
		return errors.WithStack(rows.Err())
	})
	return tasks, err
}

// scanner abstracts sql.Row and sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*Task, error) {
	var t Task
	var status string
	var objectKey, errMsg sql.NullString

	err := s.Scan(&t.ID, &t.CreatedAt, &t.Title, &t.VideoURL, &status, &objectKey, &errMsg)
	if err != nil {
		return nil, err
	}

	t.Status = Status(status)
	t.PDFObjectKey = objectKey.String
	t.Error = errMsg.String
	return &t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
