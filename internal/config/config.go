package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Data     DataConfig     `yaml:"data"`
	Fields   FieldsConfig   `yaml:"fields"`
	Annotate AnnotateConfig `yaml:"annotate"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DataConfig holds paths to the lexical data files.
type DataConfig struct {
	// JmdictXML is the JMdict lexicon in XML form; used to build the
	// compiled index when the cache is missing or stale.
	JmdictXML string `yaml:"jmdict_xml" env:"DATA_JMDICT_XML" env-default:"./data/JMdict_e.xml"`
	// JmdictCache is the compiled gob index built from JmdictXML.
	JmdictCache string `yaml:"jmdict_cache" env:"DATA_JMDICT_CACHE" env-default:"./data/jmdict.gob"`
	// FuriganaJSON is the JmdictFurigana segment file.
	FuriganaJSON string `yaml:"furigana_json" env:"DATA_FURIGANA_JSON" env-default:"./data/JmdictFurigana.json"`
	// SentencesTSV is the example-sentence corpus (word, japanese,
	// english — tab-separated). Optional.
	SentencesTSV string `yaml:"sentences_tsv" env:"DATA_SENTENCES_TSV"`
}

// FieldsConfig maps logical field roles to note field names.
// An empty name disables the corresponding derivation.
type FieldsConfig struct {
	Source     string `yaml:"source"     env:"FIELD_SOURCE"     env-default:"Expression"`
	Furigana   string `yaml:"furigana"   env:"FIELD_FURIGANA"   env-default:"Furigana"`
	Kana       string `yaml:"kana"       env:"FIELD_KANA"       env-default:"Reading"`
	Romaji     string `yaml:"romaji"     env:"FIELD_ROMAJI"`
	WordType   string `yaml:"word_type"  env:"FIELD_WORD_TYPE"  env-default:"WordType"`
	Meaning    string `yaml:"meaning"    env:"FIELD_MEANING"    env-default:"Meaning"`
	Alternates string `yaml:"alternates" env:"FIELD_ALTERNATES"`
	Sentences  string `yaml:"sentences"  env:"FIELD_SENTENCES"`
	Audio      string `yaml:"audio"      env:"FIELD_AUDIO"`
	// Pitch is reserved for pitch-accent output; nothing is derived
	// into it yet.
	Pitch string `yaml:"pitch" env:"FIELD_PITCH"`

	Masu        string `yaml:"masu"        env:"FIELD_MASU"`
	Te          string `yaml:"te"          env:"FIELD_TE"`
	Past        string `yaml:"past"        env:"FIELD_PAST"`
	Negative    string `yaml:"negative"    env:"FIELD_NEGATIVE"`
	Potential   string `yaml:"potential"   env:"FIELD_POTENTIAL"`
	Passive     string `yaml:"passive"     env:"FIELD_PASSIVE"`
	Conditional string `yaml:"conditional" env:"FIELD_CONDITIONAL"`
	Volitional  string `yaml:"volitional"  env:"FIELD_VOLITIONAL"`
	Desire      string `yaml:"desire"      env:"FIELD_DESIRE"`
	Imperative  string `yaml:"imperative"  env:"FIELD_IMPERATIVE"`
}

// AnnotateConfig holds batch annotation settings.
type AnnotateConfig struct {
	// Deck filters the notes to process; empty means the whole base.
	Deck string `yaml:"deck" env:"ANNOTATE_DECK"`
	// NumDefinitions limits dictionary definitions per note.
	NumDefinitions int `yaml:"num_definitions" env:"ANNOTATE_NUM_DEFINITIONS" env-default:"5"`
	// NumSentences limits example sentences per note.
	NumSentences int `yaml:"num_sentences" env:"ANNOTATE_NUM_SENTENCES" env-default:"2"`
	// FuriganaFallback enables morphological furigana for words
	// missing from the furigana index.
	FuriganaFallback bool `yaml:"furigana_fallback" env:"ANNOTATE_FURIGANA_FALLBACK" env-default:"false"`
}

// AudioConfig holds pronunciation service settings.
type AudioConfig struct {
	// URL of the pronunciation service; empty disables audio.
	URL string `yaml:"url" env:"AUDIO_URL"`
	// MediaDir is where downloaded clips are stored.
	MediaDir string        `yaml:"media_dir" env:"AUDIO_MEDIA_DIR" env-default:"./media"`
	Timeout  time.Duration `yaml:"timeout"   env:"AUDIO_TIMEOUT"   env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
