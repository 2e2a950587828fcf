package migrations

// Table is one relation of the prison schema with its creation statement.
type Table struct {
	Name string
	DDL  string
}

// Tables lists the schema in dependency order: every table appears after the tables it references.
var Tables = []Table{
	{
		Name: "prison_security",
		DDL: `CREATE TABLE prison_security (
	security_level INTEGER PRIMARY KEY,
	guard_count    INTEGER NOT NULL DEFAULT 0 CHECK (guard_count >= 0),
	location       VARCHAR(100) NOT NULL
)`,
	},
	{
		Name: "prison_info",
		DDL: `CREATE TABLE prison_info (
	prison_num     BIGINT PRIMARY KEY,
	security_level INTEGER NOT NULL REFERENCES prison_security (security_level) ON DELETE CASCADE
)`,
	},
	{
		Name: "cells",
		DDL: `CREATE TABLE cells (
	cell_type  VARCHAR(20) PRIMARY KEY,
	prison_num BIGINT NOT NULL REFERENCES prison_info (prison_num) ON DELETE CASCADE
)`,
	},
	{
		Name: "inmates",
		DDL: `CREATE TABLE inmates (
	inmate_id    BIGINT PRIMARY KEY,
	holding_cell VARCHAR(20) NOT NULL REFERENCES cells (cell_type) ON DELETE CASCADE,
	health_num   BIGINT NOT NULL,
	start_date   DATE NOT NULL,
	end_date     DATE NOT NULL
)`,
	},
	{
		Name: "inmate_cell_history",
		DDL: `CREATE TABLE inmate_cell_history (
	inmate_id    BIGINT NOT NULL REFERENCES inmates (inmate_id) ON DELETE CASCADE,
	holding_cell VARCHAR(20) NOT NULL REFERENCES cells (cell_type) ON DELETE CASCADE,
	assigned_on  DATE NOT NULL DEFAULT CURRENT_DATE,
	PRIMARY KEY (inmate_id, holding_cell, assigned_on)
)`,
	},
	{
		Name: "sentences",
		DDL: `CREATE TABLE sentences (
	sentence_id BIGSERIAL PRIMARY KEY,
	duration    INTEGER NOT NULL CHECK (duration >= 0),
	crime_name  VARCHAR(100) NOT NULL,
	crime_type  VARCHAR(50) NOT NULL,
	severity    INTEGER NOT NULL CHECK (severity BETWEEN 0 AND 10),
	inmate_id   BIGINT NOT NULL REFERENCES inmates (inmate_id) ON DELETE CASCADE
)`,
	},
	{
		Name: "medical_data",
		DDL: `CREATE TABLE medical_data (
	record_num BIGINT PRIMARY KEY,
	blood_type VARCHAR(3) NOT NULL,
	weight     NUMERIC(6, 2) NOT NULL,
	height     NUMERIC(6, 2) NOT NULL,
	sex        CHAR(1) NOT NULL,
	inmate_id  BIGINT NOT NULL REFERENCES inmates (inmate_id) ON DELETE CASCADE
)`,
	},
	{
		Name: "clubs",
		DDL: `CREATE TABLE clubs (
	name      VARCHAR(100) PRIMARY KEY,
	club_type VARCHAR(50) NOT NULL
)`,
	},
	{
		Name: "amenities",
		DDL: `CREATE TABLE amenities (
	amen_type  VARCHAR(50) NOT NULL,
	name       VARCHAR(100) NOT NULL,
	recreation VARCHAR(100),
	prison_num BIGINT NOT NULL REFERENCES prison_info (prison_num) ON DELETE CASCADE,
	PRIMARY KEY (amen_type, name)
)`,
	},
	{
		Name: "employees",
		DDL: `CREATE TABLE employees (
	emp_id BIGINT PRIMARY KEY,
	name   VARCHAR(100) NOT NULL
)`,
	},
	{
		Name: "works_at",
		DDL: `CREATE TABLE works_at (
	prison_num BIGINT NOT NULL REFERENCES prison_info (prison_num) ON DELETE CASCADE,
	emp_id     BIGINT NOT NULL REFERENCES employees (emp_id) ON DELETE CASCADE,
	salary     NUMERIC(12, 2) NOT NULL DEFAULT 0,
	PRIMARY KEY (prison_num, emp_id)
)`,
	},
	{
		Name: "certifications",
		DDL: `CREATE TABLE certifications (
	certificate VARCHAR(100) NOT NULL,
	skills      VARCHAR(200),
	emp_id      BIGINT NOT NULL REFERENCES employees (emp_id) ON DELETE CASCADE,
	PRIMARY KEY (certificate, emp_id)
)`,
	},
	{
		Name: "chefs",
		DDL: `CREATE TABLE chefs (
	emp_id       BIGINT PRIMARY KEY REFERENCES employees (emp_id) ON DELETE CASCADE,
	meal_to_cook VARCHAR(100) NOT NULL
)`,
	},
	{
		Name: "maintenance",
		DDL: `CREATE TABLE maintenance (
	emp_id           BIGINT PRIMARY KEY REFERENCES employees (emp_id) ON DELETE CASCADE,
	maintenance_type VARCHAR(100) NOT NULL
)`,
	},
	{
		Name: "guards",
		DDL: `CREATE TABLE guards (
	emp_id     BIGINT PRIMARY KEY REFERENCES employees (emp_id) ON DELETE CASCADE,
	guard_area VARCHAR(100) NOT NULL
)`,
	},
	{
		Name: "medical_staff",
		DDL: `CREATE TABLE medical_staff (
	emp_id       BIGINT PRIMARY KEY REFERENCES employees (emp_id) ON DELETE CASCADE,
	medical_type VARCHAR(100) NOT NULL
)`,
	},
}

// TableNames returns the table names in dependency order.
func TableNames() []string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = t.Name
	}
	return names
}
