package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/client/reports"
	"github.com/dmitrijs2005/emsdesk/internal/client/services"
)

func (a *App) registerDocumentCommands() {
	a.add(&command{name: "docs", aliases: []string{"documents"}, route: navigation.RouteDocuments, usage: "[all|expired|expiring30|expiring60] [employee-id]",
		help: "list documents with their expiry status", screen: true, run: a.ListDocuments})
	a.add(&command{name: "expiring", route: navigation.RouteDocuments, usage: "[days]", help: "documents expiring within days (default 30)", screen: true, run: a.ListExpiring})
	a.add(&command{name: "doc-upload", route: navigation.RouteDocuments, help: "upload a document", run: a.UploadDocument})
	a.add(&command{name: "doc-view", route: navigation.RouteDocuments, usage: "<id>", help: "download a document to the preview folder", run: a.ViewDocument})
	a.add(&command{name: "doc-delete", route: navigation.RouteDocuments, usage: "<id>", help: "delete a document", run: a.DeleteDocument})
	a.add(&command{name: "report", route: navigation.RouteReports, usage: "<file.xlsx|file.pdf>", help: "export the last document list", run: a.Report})
}

func (a *App) ListDocuments(ctx context.Context, args []string) error {
	filter := models.FilterAll
	var employeeID *int64

	for _, arg := range args {
		if f, err := models.ParseExpiryFilter(arg); err == nil {
			filter = f
			continue
		}
		id, err := parseID(arg)
		if err != nil {
			return errUsage
		}
		employeeID = &id
	}

	docs, err := a.svc.Documents.List(ctx, employeeID)
	if err != nil {
		return err
	}
	docs = models.FilterByExpiry(docs, filter)
	a.setLastDocs(docs)

	if len(docs) == 0 {
		a.println("No documents")
		return nil
	}
	a.printDocuments(docs)
	return nil
}

func (a *App) ListExpiring(ctx context.Context, args []string) error {
	days := 30
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return errUsage
		}
		days = n
	}

	docs, err := a.svc.Documents.ListExpiring(ctx, days)
	if err != nil {
		return err
	}
	a.setLastDocs(docs)

	if len(docs) == 0 {
		a.printf("No documents expire within %d days\n", days)
		return nil
	}
	a.printDocuments(docs)
	return nil
}

func (a *App) printDocuments(docs []models.Document) {
	t := newTable(a.out, "ID", "EMPLOYEE", "TYPE", "NUMBER", "EXPIRES", "STATUS")
	for _, d := range docs {
		employee := d.EmployeeName
		if employee == "" {
			employee = idStr(d.EmployeeID)
		}
		label := d.Expiry()
		t.row(idStr(d.ID), employee, d.DocumentType, orDash(d.DocumentNumber), orDash(d.ExpiryDate), statusMark(label.Status)+label.Text)
	}
	t.Flush()
}

func statusMark(s models.ExpiryStatus) string {
	switch s {
	case models.ExpiryExpired:
		return "!! "
	case models.ExpiryCritical:
		return "! "
	}
	return ""
}

// UploadDocument prompts for the metadata and the file. After the upload a
// document with the same type and number already on file is reported.
func (a *App) UploadDocument(ctx context.Context, _ []string) error {
	var meta models.DocumentUpload

	defEmployee := ""
	if sess, ok := a.client.Session().Current(); ok && sess.User.EmployeeID != nil {
		defEmployee = strconv.FormatInt(*sess.User.EmployeeID, 10)
	}
	v, err := a.ask(withDefault("Employee id", defEmployee))
	if err != nil {
		return err
	}
	if v == "" {
		v = defEmployee
	}
	if meta.EmployeeID, err = parseID(v); err != nil {
		return err
	}

	if meta.DocumentType, err = a.ask("Document type (e.g. PASSPORT, VISA, BRP)"); err != nil {
		return err
	}
	if meta.DocumentNumber, err = a.askOptional("Document number"); err != nil {
		return err
	}
	if meta.IssueDate, err = a.askOptional("Issue date YYYY-MM-DD"); err != nil {
		return err
	}
	if meta.ExpiryDate, err = a.askOptional("Expiry date YYYY-MM-DD"); err != nil {
		return err
	}
	path, err := a.ask("File path")
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	doc, err := a.svc.Documents.Upload(ctx, meta, services.Attachment{Name: filepath.Base(path), Size: info.Size(), Reader: f})
	if err != nil {
		return err
	}
	a.printf("Uploaded %s as %s (%s)\n", doc.DocumentType, idStr(doc.ID), doc.Expiry().Text)
	a.warnDuplicate(ctx, meta, doc)
	return nil
}

// warnDuplicate reports another document of the same type and number on
// the employee's file. The upload has already succeeded, so a failed lookup
// is only logged.
func (a *App) warnDuplicate(ctx context.Context, meta models.DocumentUpload, doc models.Document) {
	if doc.EmployeeID == 0 {
		doc.EmployeeID = meta.EmployeeID
	}
	if doc.DocumentNumber == "" {
		doc.DocumentNumber = meta.DocumentNumber
	}

	existing, err := a.svc.Documents.List(ctx, &doc.EmployeeID)
	if err != nil {
		a.log.Warn(ctx, "duplicate check failed", "employee", doc.EmployeeID, "error", err)
		return
	}
	if dup := models.FindDuplicate(existing, doc); dup != nil {
		a.printf("Warning: %s %s is already on file as %s\n", dup.DocumentType, dup.DocumentNumber, idStr(dup.ID))
	}
}

func (a *App) ViewDocument(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	blob, err := a.svc.Documents.Download(ctx, id)
	if err != nil {
		return err
	}
	name := blob.Name
	if name == "" {
		name = "document-" + strconv.FormatInt(id, 10)
	}

	path, err := a.preview.Load(name, blob.Data)
	if err != nil {
		return err
	}
	a.printf("Saved preview to %s\n", path)
	return nil
}

func (a *App) DeleteDocument(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.in, "Delete document "+idStr(id)+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Documents.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}

// Report exports the most recent document listing. With nothing listed yet
// it exports every document.
func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	docs := a.getLastDocs()
	if docs == nil {
		var err error
		if docs, err = a.svc.Documents.List(ctx, nil); err != nil {
			return err
		}
	}

	if err := reports.Write(args[0], docs); err != nil {
		return err
	}
	a.printf("Wrote %d document(s) to %s\n", len(docs), args[0])
	return nil
}
