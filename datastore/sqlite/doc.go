/*
Package sqlite provides a SQLite implementation of datastore.Backend using the
pure-Go modernc.org/sqlite driver.

All keys live in one table:

	CREATE TABLE kv_entries (key BLOB PRIMARY KEY, value BLOB NOT NULL) WITHOUT ROWID;

Atomic maps to one immediate write transaction on a single writer connection,
so writes from one process run one at a time and other processes wait up to the
busy timeout. View reads inside a deferred transaction on a separate read-only
pool. In WAL mode that transaction sees a stable snapshot and does not block
writers or other views.
*/
package sqlite
