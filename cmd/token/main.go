// token emite un JWT de operador para las rutas de escritura (JWT_SECRET debe estar definido).
//
// Uso: go run ./cmd/token --operator magazynier [--minutes 480]
//
//	go run ./cmd/token --hash-password 's3cr3t'   (hash bcrypt para AUTH_OPERATORS)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

func main() {
	operator := pflag.StringP("operator", "o", "", "nombre del operador (claim operator)")
	minutes := pflag.IntP("minutes", "m", 0, "validez en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	hashPassword := pflag.String("hash-password", "", "imprime el hash bcrypt de la contraseña y termina")
	pflag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido: las escrituras no requieren token")
		os.Exit(1)
	}
	if *operator == "" {
		fmt.Fprintln(os.Stderr, "--operator: requerido")
		os.Exit(2)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *operator, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
