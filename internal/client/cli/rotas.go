package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/client/services"
)

func (a *App) registerRotaCommands() {
	a.add(&command{name: "rotas", route: navigation.RouteRotas, help: "list shift rotas", screen: true, run: a.ListRotas})
	a.add(&command{name: "rota", route: navigation.RouteRotas, usage: "<id>", help: "show one rota", run: a.ShowRota})
	a.add(&command{name: "rota-upload", route: navigation.RouteRotas, usage: "<image>", help: "upload a rota photo for parsing", run: a.UploadRota})
	a.add(&command{name: "rota-delete", route: navigation.RouteRotas, usage: "<id>", help: "delete a rota", run: a.DeleteRota})
}

func (a *App) ListRotas(ctx context.Context, _ []string) error {
	list, err := a.svc.Rotas.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No rotas")
		return nil
	}
	t := newTable(a.out, "ID", "NAME", "FROM", "TO", "SHIFTS")
	for _, r := range list {
		t.row(idStr(r.ID), r.Name, orDash(r.StartDate), orDash(r.EndDate), fmt.Sprint(len(r.Entries)))
	}
	t.Flush()
	return nil
}

func (a *App) ShowRota(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	r, err := a.svc.Rotas.Get(ctx, id)
	if err != nil {
		return err
	}

	a.printf("%s (%s to %s)\n", r.Name, orDash(r.StartDate), orDash(r.EndDate))
	t := newTable(a.out, "DATE", "EMPLOYEE", "SHIFT")
	for _, e := range r.Entries {
		employee := e.EmployeeName
		if employee == "" {
			employee = idStr(e.EmployeeID)
		}
		t.row(e.Date, employee, e.Shift)
	}
	t.Flush()
	return nil
}

func (a *App) UploadRota(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := a.svc.Rotas.UploadImage(ctx, services.Attachment{Name: filepath.Base(path), Size: info.Size(), Reader: f})
	if err != nil {
		return err
	}
	a.printf("Rota %s created with %d shift(s)\n", idStr(r.ID), len(r.Entries))
	return nil
}

func (a *App) DeleteRota(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.in, "Delete rota "+idStr(id)+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Rotas.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}
