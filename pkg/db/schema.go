package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Sources table: the user's ordered source-URL list. This is the only
-- state that survives between sessions.
CREATE TABLE IF NOT EXISTS sources (
    source_id INTEGER PRIMARY KEY AUTOINCREMENT,
    position INTEGER NOT NULL,
    url TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sources_position ON sources(position);

-- Runs table: one row per analysis request, success or failure.
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    model TEXT NOT NULL,
    topic TEXT,
    url_count INTEGER NOT NULL,
    product_count INTEGER NOT NULL DEFAULT 0,
    qa_count INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL,            -- ok, failed
    error_message TEXT,
    artifact_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
