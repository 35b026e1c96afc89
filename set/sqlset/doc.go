/*
Package sqlset reads sets of training data from SQL database tables and
writes them back.

A set is stored on a single table whose first column is an identifier
for each row, followed by a TEXT column per feature and a last one for
the target. Rows are read in identifier order, with the identifier left
out, and every value is read as a string.

The database specifics are left to an Adapter: see the sqlite3adapter
and pgadapter subpackages.
*/
package sqlset
