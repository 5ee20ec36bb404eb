// Package main provides localization for the samplegen CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate deterministic sample media for compression testing": "圧縮テスト用の決定論的なサンプルメディアを生成",

		// Generate command
		"Generate the fixed set of sample images and video": "固定セットのサンプル画像と動画を生成",

		// Flags
		"Output directory for the generated artifacts":            "生成物の出力ディレクトリ",
		"Path to a YAML config file":                              "YAML設定ファイルのパス",
		"Skip the video artifact":                                 "動画の生成をスキップ",
		"Path to a TTF font for labels (default: probe system fonts)": "ラベル用TTFフォントのパス（既定: システムフォントを探索）",
		"Path to the ffmpeg executable":                           "ffmpeg実行ファイルのパス",
		"Save intermediate canvases to the debug directory":       "中間キャンバスをデバッグディレクトリに保存",
		"Directory for debug output":                              "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                    "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                                 "すべてのログ出力を抑制",

		// Version command
		"Show version information": "バージョン情報を表示",
		"samplegen version %s":     "samplegen バージョン %s",
	})
}
