// grantowner concede o revoca el rol de owner de plataforma a un usuario.
// La fila en la tabla owners ES el rol; no hay claims que refrescar.
//
// Uso:
//
//	go run ./cmd/grantowner --email admin@vitta.app
//	go run ./cmd/grantowner --uid <uuid> --revoke
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/infrastructure/postgres"
	"github.com/vitta-app/vitta-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del usuario")
	uid := flag.String("uid", "", "uid del usuario (alternativa a --email)")
	revoke := flag.Bool("revoke", false, "revocar el rol en vez de concederlo")
	flag.Parse()

	if *email == "" && *uid == "" {
		fmt.Fprintln(os.Stderr, "se requiere --email o --uid")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	owners := postgres.NewOwnerRepository(pool)

	user, err := resolveUser(ctx, users, *uid, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *revoke {
		if err := owners.Revoke(ctx, user.ID); err != nil {
			fmt.Fprintf(os.Stderr, "revocar owner: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rol de owner revocado a %s (%s)\n", user.Email, user.ID)
		return
	}

	owner := &entity.Owner{UID: user.ID, Email: user.Email, GrantedAt: time.Now()}
	if err := owners.Grant(ctx, owner); err != nil {
		fmt.Fprintf(os.Stderr, "conceder owner: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rol de owner concedido a %s (%s)\n", user.Email, user.ID)
}

// resolveUser busca por uid si viene, si no por email.
func resolveUser(ctx context.Context, users *postgres.UserRepo, uid, email string) (*entity.User, error) {
	if uid != "" {
		user, err := users.GetByID(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("buscar usuario: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("no existe un usuario con uid %s", uid)
		}
		return user, nil
	}
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("no existe un usuario con email %s", email)
	}
	return user, nil
}
