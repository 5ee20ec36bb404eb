package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating sample media fixtures": "サンプルメディアを生成中",
		"Created %s (%dx%d)":               "%s を作成しました (%dx%d)",
		"Created %s (%dx%d, %ds)":          "%s を作成しました (%dx%d, %d秒)",
		"Generation completed":             "生成が完了しました",
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",

		// Still stage
		"Painting %s scene (%dx%d)": "%s シーンを描画中 (%dx%d)",

		// Frames / encode stages
		"Synthesizing %d frames at %.1f fps": "%d フレームを %.1f fps で合成中",
		"Encoding video with quality %d":     "品質 %d で動画をエンコード中",
		"Video encoded: %d bytes":            "動画エンコード完了: %d バイト",
		"Video verified: %s %dx%d, %d frames": "動画を検証しました: %s %dx%d, %d フレーム",

		// Warnings
		"No system font found, labels will use the built-in bitmap face": "システムフォントが見つかりません。ラベルは内蔵ビットマップフォントで描画されます",
		"Video encoder unavailable, skipping %s: %s":                     "動画エンコーダーが利用できないため %s をスキップします: %s",
		"Install ffmpeg and make sure it is on PATH to enable video generation": "動画を生成するには ffmpeg をインストールして PATH に追加してください",
		"Video generation disabled, skipping %s":                         "動画生成が無効のため %s をスキップします",
		"Could not verify video: %s":                                     "動画を検証できませんでした: %s",

		// Errors
		"Failed to generate %s: %s": "%s の生成に失敗しました: %s",
		"Failed to encode %s: %s":   "%s のエンコードに失敗しました: %s",
		"Failed to write %s: %s":    "%s の書き込みに失敗しました: %s",
	})
}
