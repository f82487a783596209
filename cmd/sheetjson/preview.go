package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/models"
)

var rule = strings.Repeat("=", 50)

func printBanner(w io.Writer, inputPath, outputPath, sheetName string) {
	if outputPath == "" {
		outputPath = "自动生成"
	}
	if sheetName == "" {
		sheetName = "所有工作表"
	}

	fmt.Fprintln(w, rule)
	color.New(color.Bold).Fprintln(w, "Excel转JSON转换工具")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "输入文件: %s\n", inputPath)
	fmt.Fprintf(w, "输出文件: %s\n", outputPath)
	fmt.Fprintf(w, "工作表: %s\n", sheetName)
	fmt.Fprintln(w, rule)
}

func printFailure(w io.Writer) {
	color.New(color.FgRed).Fprintln(w, "\n转换失败！")
}

// printPreview shows the shape of every converted sheet.
func printPreview(w io.Writer, result *models.ConversionResult) {
	color.New(color.FgGreen).Fprintln(w, "\n转换成功完成！")
	fmt.Fprintln(w, "\nJSON结构预览:")

	for _, s := range result.Sheets {
		columns := s.Sheet.Columns()
		fmt.Fprintf(w, "工作表 '%s':\n", s.Name)
		fmt.Fprintf(w, "  - 列数: %d\n", len(columns))
		fmt.Fprintf(w, "  - 行数: %d\n", len(s.Sheet.Data))
		if len(columns) > 0 {
			fmt.Fprintf(w, "  - 英文列名: [%s]\n", strings.Join(columns, ", "))
		}
		fmt.Fprintf(w, "  - 字段映射: {%s}\n", formatDesc(s.Sheet.Desc))
		fmt.Fprintln(w)
	}
}

func formatDesc(desc models.Object) string {
	parts := make([]string, len(desc))
	for i, f := range desc {
		parts[i] = fmt.Sprintf("%s: %v", f.Key, f.Value)
	}
	return strings.Join(parts, ", ")
}
