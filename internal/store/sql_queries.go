package store

const (
	createUser = `INSERT INTO users (email, name, password_hash, password_salt, api_key, plan) 
    VALUES ($1, $2, $3, $4, $5, $6) 
    RETURNING user_id, email, name, password_hash, password_salt, api_key, plan, usage_count, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, password_salt, api_key, plan, usage_count, created_at, updated_at 
    FROM users 
    WHERE email = $1;`

	findUserByAPIKey = `SELECT user_id, email, name, password_hash, password_salt, api_key, plan, usage_count, created_at, updated_at 
    FROM users 
    WHERE api_key = $1;`

	incrementUsage = `UPDATE users 
    SET usage_count = usage_count + 1, updated_at = now() 
    WHERE email = $1;`

	createProject = `INSERT INTO projects (id, owner_email, name, description, status) 
    VALUES ($1, $2, $3, $4, $5) 
    RETURNING id, owner_email, name, description, status, created_at, updated_at;`

	findProjectsByOwner = `SELECT id, owner_email, name, description, status, created_at, updated_at 
    FROM projects 
    WHERE owner_email = $1 
    ORDER BY created_at DESC;`

	findProjectByID = `SELECT id, owner_email, name, description, status, created_at, updated_at 
    FROM projects 
    WHERE id = $1 AND owner_email = $2;`

	deleteProject = `DELETE FROM projects 
    WHERE id = $1 AND owner_email = $2;`

	listPublicTables = `SELECT table_name 
    FROM information_schema.tables 
    WHERE table_schema = 'public' 
    ORDER BY table_name 
    LIMIT $1;`
)
