/*
Package mongoset reads sets of training data from MongoDB collections
and writes them back.

Every document of a collection is a row: its _id is the row identifier
and is left out, and the rest of its fields, in the order they have in
the first document, are the columns. Values are read as strings.
*/
package mongoset

import (
	"context"
	"fmt"
	"time"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	idField     = "_id"
	dialTimeout = 10 * time.Second
)

/*
Dial takes a MongoDB connection URL and returns a session on it or an
error if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.DialWithTimeout(url, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %v", err)
	}
	return session, nil
}

/*
ReadSet takes a context, a MongoDB session and a collection name and
returns the dataset stored on the collection of the session's default
database, read in _id order, or an error. The context is checked between
documents.
*/
func ReadSet(ctx context.Context, session *mgo.Session, collection string) (*dataset.Dataset, error) {
	iter := session.DB("").C(collection).Find(nil).Sort(idField).Iter()
	var headers dataset.Headers
	rows := []dataset.Row{}
	for i := 1; ; i++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		if headers == nil {
			headers = headersFromDocument(doc)
		}
		row, err := rowFromDocument(doc, headers)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("reading document %d of collection %s: %v", i, collection, err)
		}
		rows = append(rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	if headers == nil {
		return nil, fmt.Errorf("collection %s: %w", collection, set.ErrEmptySource)
	}
	return dataset.New(headers, rows), nil
}

/*
WriteSet takes a context, a MongoDB session, a collection name and a
dataset and inserts a document per row on the collection, with fields
in headers order.
*/
func WriteSet(ctx context.Context, session *mgo.Session, collection string, d *dataset.Dataset) error {
	docs := make([]interface{}, 0, len(d.Rows))
	for _, r := range d.Rows {
		docs = append(docs, documentFromRow(r, d.Headers))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	err := session.DB("").C(collection).Insert(docs...)
	if err != nil {
		return fmt.Errorf("inserting %d documents in collection %s: %v", len(docs), collection, err)
	}
	return nil
}

func headersFromDocument(doc bson.D) dataset.Headers {
	headers := dataset.Headers{}
	for _, e := range doc {
		if e.Name != idField {
			headers = append(headers, e.Name)
		}
	}
	return headers
}

func rowFromDocument(doc bson.D, headers dataset.Headers) (dataset.Row, error) {
	values := doc.Map()
	row := make(dataset.Row, len(headers))
	for i, h := range headers {
		v, ok := values[h]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for %s", h)
		}
		row[i] = fmt.Sprintf("%v", v)
	}
	return row, nil
}

func documentFromRow(r dataset.Row, headers dataset.Headers) bson.D {
	doc := make(bson.D, 0, len(headers)+1)
	doc = append(doc, bson.DocElem{Name: idField, Value: bson.NewObjectId()})
	for i, h := range headers {
		doc = append(doc, bson.DocElem{Name: h, Value: r[i]})
	}
	return doc
}
