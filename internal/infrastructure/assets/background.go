package assets

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"os"
)

// BackgroundStyle ページ背景のCSS宣言を作成する
// 画像は起動時に1度だけ読み込み、data URL として埋め込む
func BackgroundStyle(imagePath string) (template.CSS, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return DefaultBackgroundStyle(), fmt.Errorf("背景画像の読み込みに失敗: %w", err)
	}

	mimeType := http.DetectContentType(data)
	encoded := base64.StdEncoding.EncodeToString(data)

	return template.CSS(fmt.Sprintf(
		`background-image: url("data:%s;base64,%s"); background-size: contain; background-repeat: no-repeat; background-position: center; background-color: %s;`,
		mimeType, encoded, backgroundColor,
	)), nil
}

// DefaultBackgroundStyle 背景画像がない場合のグレー背景
func DefaultBackgroundStyle() template.CSS {
	return template.CSS("background-color: " + backgroundColor + ";")
}

const backgroundColor = "#AAAAAA"
