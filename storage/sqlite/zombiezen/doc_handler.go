package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sent "github.com/revelaction/sintaxis/sentence"
	"github.com/revelaction/sintaxis/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocHandler struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocHandler)(nil)

func NewDocHandler(pool *sqlitex.Pool) *DocHandler {
	return &DocHandler{pool: pool}
}

func (h *DocHandler) List(lemma string) ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT id, title, labels, model FROM docs ORDER BY id"
	var args []interface{}
	if lemma != "" {
		query = `SELECT id, title, labels, model FROM docs
			WHERE id IN (SELECT doc_id FROM sentence_lemmas WHERE lemma = ?)
			ORDER BY id`
		args = append(args, lemma)
	}

	var docs []sent.Doc
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
				Model: stmt.ColumnText(3),
			}
			labelsStr := stmt.ColumnText(2)
			if labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocHandler) Read(id int) (sent.Doc, error) {
	return h.read("id = ?", id)
}

func (h *DocHandler) Lookup(hash string) (sent.Doc, error) {
	return h.read("hash = ?", hash)
}

func (h *DocHandler) read(where string, arg interface{}) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	var doc sent.Doc
	found := false

	err = sqlitex.Execute(conn, "SELECT id, title, labels, model, text FROM docs WHERE "+where, &sqlitex.ExecOptions{
		Args: []interface{}{arg},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Id = stmt.ColumnInt(0)
			doc.Title = stmt.ColumnText(1)
			if labels := stmt.ColumnText(2); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			doc.Model = stmt.ColumnText(3)
			doc.Text = stmt.ColumnText(4)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("%w: %v", storage.ErrNotFound, arg)
	}

	doc.Tokens = [][]sent.Token{}
	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var tokens []sent.Token
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &tokens); err != nil {
				return err
			}
			doc.Tokens = append(doc.Tokens, tokens)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

func (h *DocHandler) Write(doc sent.Doc, hash string) (id int, err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")

	existing := int64(-1)
	err = sqlitex.Execute(conn, "SELECT id FROM docs WHERE hash = ?", &sqlitex.ExecOptions{
		Args: []interface{}{hash},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			existing = stmt.ColumnInt64(0)
			return nil
		},
	})
	if err != nil {
		return 0, err
	}

	if existing >= 0 {
		err = sqlitex.Execute(conn, "UPDATE docs SET title = ?, labels = ? WHERE id = ?", &sqlitex.ExecOptions{
			Args: []interface{}{doc.Title, labels, existing},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to update doc: %w", err)
		}
		return int(existing), nil
	}

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels, hash, model, text) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, labels, hash, doc.Model, doc.Text},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for position, sentence := range doc.Tokens {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return 0, marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, position, string(data)},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert sentence: %w", err)
		}

		// Extract unique lemmas
		uniqueLemmas := make(map[string]bool)
		for _, token := range sentence {
			if token.Lemma != "" {
				uniqueLemmas[token.Lemma] = true
			}
		}

		for lemma := range uniqueLemmas {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, doc_id, position) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, docID, position},
			})
			if err != nil {
				return 0, fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return int(docID), nil
}
