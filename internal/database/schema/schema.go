package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Core User Information
CREATE TABLE IF NOT EXISTS users (
    user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(30) UNIQUE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Plants: one per user, created at registration
CREATE TABLE IF NOT EXISTS plants (
    user_id UUID PRIMARY KEY REFERENCES users(user_id) ON DELETE CASCADE,
    name VARCHAR(40) NOT NULL,
    color VARCHAR(20) NOT NULL,
    growth BIGINT NOT NULL DEFAULT 0,
    stage SMALLINT NOT NULL DEFAULT 0,
    dead BOOLEAN NOT NULL DEFAULT FALSE,
    watered_at TIMESTAMPTZ NOT NULL,
    fertilized_until TIMESTAMPTZ,
    score INTEGER NOT NULL DEFAULT 0,
    generation INTEGER NOT NULL DEFAULT 1,
    refreshed_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Garden discovery and the leaderboard both scan living plants by score
CREATE INDEX IF NOT EXISTS idx_plants_score ON plants (score DESC, watered_at ASC) WHERE NOT dead;
CREATE INDEX IF NOT EXISTS idx_plants_watered_at ON plants (watered_at DESC) WHERE NOT dead;

-- Items: a synced copy of the in-code catalog, for reporting joins
CREATE TABLE IF NOT EXISTS items (
    item_id INTEGER PRIMARY KEY,
    item_name VARCHAR(100) UNIQUE NOT NULL,
    item_description TEXT NOT NULL DEFAULT '',
    price INTEGER NOT NULL DEFAULT 0,
    for_sale BOOLEAN NOT NULL DEFAULT FALSE
);

-- User Inventory (JSONB ledger)
CREATE TABLE IF NOT EXISTS user_inventory (
    user_id UUID PRIMARY KEY REFERENCES users(user_id) ON DELETE CASCADE,
    inventory JSONB NOT NULL DEFAULT '{"slots": []}',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Postcards: one-way mail between users
CREATE TABLE IF NOT EXISTS postcards (
    postcard_id BIGSERIAL PRIMARY KEY,
    from_user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    to_user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    subject VARCHAR(128) NOT NULL,
    body TEXT NOT NULL DEFAULT '',
    is_seen BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_postcards_inbox ON postcards (to_user_id, created_at DESC);

-- Neighbor watering ledger: caps the reward at one per visitor per
-- plant per day
CREATE TABLE IF NOT EXISTS neighbor_waterings (
    actor_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    owner_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    last_watered TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (actor_id, owner_id)
);
`
