// Package transaction executes filesystem mutations one at a time and undoes
// the completed ones, newest first, when a later step fails.
//
// A workflow builds a plan of Operations and runs it inside a Transaction:
//
//	tx := transaction.New(fsys)
//	defer tx.Close()
//	if err := tx.Run(plan...); err != nil {
//		return err
//	}
//	tx.Commit()
//
// Each Operation is executed the moment it is added. Only operations that
// succeeded enter the log, so a rollback never touches a step that did not
// happen. Close is a safety net for paths that return without committing:
// it rolls back and logs, but never reports an error.
//
// Operations are plain values (a Kind plus its paths), so the log can be
// printed, compared in tests and returned from dry runs.
package transaction
