// Package data embeds the MariaDB init SQL used to bootstrap database
// containers. The DDL mirrors the GORM migration; the privileges script
// scopes the application user to plain DML.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string
