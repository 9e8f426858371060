// lifelogctl — административная CLI lifelog: работает напрямую с хранилищем из конфигурации.
//
//	lifelogctl migrate
//	lifelogctl export --from 2025-01-01 --to 2025-01-31 --out january.json
//	lifelogctl purge --yes
//	lifelogctl expectancy
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
