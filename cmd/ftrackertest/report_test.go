package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stretchr/testify/suite"
	"sigs.k8s.io/yaml"

	"github.com/Yandex-Practicum/go-ftracker/internal/app"
	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

var referenceReport = []string{
	"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
	"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

// ReportSuite запускает "ftracker report" и сверяет вывод
type ReportSuite struct {
	suite.Suite

	binaryPath string
	dir        string
}

func (suite *ReportSuite) SetupSuite() {
	if flagBinaryPath == "" {
		suite.T().Skip("-binary-path flag required")
	}
	path, err := filepath.Abs(flagBinaryPath)
	suite.Require().NoError(err)
	suite.binaryPath = path
	suite.dir = suite.T().TempDir()
}

func (suite *ReportSuite) run(args ...string) (stdout []string, stderr string, exitCode int) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	p := fork.NewBackgroundProcess(ctx, suite.binaryPath,
		fork.WithArgs(args...),
		fork.WithDir(suite.dir),
		fork.WithEnv(append(os.Environ(), "FTRACKER_LOG_LEVEL=warn")...),
	)
	suite.Require().NoError(p.Start(ctx), "Невозможно запустить процесс командой %s", p)

	exitCode, err := p.Wait(ctx)
	suite.Require().NoError(err, "Процесс %s не завершился", p)

	out := strings.TrimSuffix(string(p.Stdout()), "\n")
	if out != "" {
		stdout = strings.Split(out, "\n")
	}
	return stdout, string(p.Stderr()), exitCode
}

// writePackages кладёт файл в рабочую директорию процесса и возвращает его относительное имя
func (suite *ReportSuite) writePackages(name string, packages []app.Package) string {
	content, err := yaml.Marshal(packages)
	suite.Require().NoError(err)
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, name), content, 0o600))
	return name
}

// TestReferenceScenario проверяет вывод без входного файла
func (suite *ReportSuite) TestReferenceScenario() {
	for _, args := range [][]string{nil, {"report"}} {
		stdout, stderr, exitCode := suite.run(args...)
		suite.Equal(0, exitCode, "Ненулевой код возврата, STDERR:\n%s", stderr)
		suite.Equal(referenceReport, stdout, "Вывод программы не совпадает с эталонным")
	}
}

// TestRandomPackages проверяет отчёт по случайным показаниям датчиков
func (suite *ReportSuite) TestRandomPackages() {
	packages := make([]app.Package, 0, 30)
	expected := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		p := app.Package{Type: random.TrainingCode()}
		p.Data = random.TrainingData(p.Type)
		packages = append(packages, p)

		c, err := training.ReadPackage(p.Type, p.Data)
		suite.Require().NoError(err)
		info, err := training.ShowTrainingInfo(c)
		suite.Require().NoError(err)
		expected = append(expected, info.Message())
	}

	path := suite.writePackages("random.yaml", packages)
	stdout, stderr, exitCode := suite.run("report", "-f", path)
	suite.Equal(0, exitCode, "Ненулевой код возврата, STDERR:\n%s", stderr)
	suite.Equal(expected, stdout, "Вывод программы не совпадает с ожидаемым для файла %s", path)
}

// TestUnknownTraining проверяет, что неизвестный тип тренировки прерывает отчёт
func (suite *ReportSuite) TestUnknownTraining() {
	code := random.ASCIIString(3, 15)
	for _, ok := training.Arity(code); ok; _, ok = training.Arity(code) {
		code = random.ASCIIString(3, 15)
	}

	packages := []app.Package{
		{Type: code, Data: []any{15000, 1, 75}},
		app.DefaultPackages()[1],
	}
	path := suite.writePackages("unknown.yaml", packages)

	stdout, stderr, exitCode := suite.run("report", "-f", path)
	suite.NotEqual(0, exitCode, "Программа должна завершаться с ошибкой на неизвестном типе тренировки %q", code)
	suite.Empty(stdout)
	suite.Contains(stderr, "неизвестный тип тренировки")

	stdout, _, exitCode = suite.run("report", "-f", path, "--keep-going")
	suite.NotEqual(0, exitCode)
	suite.Equal(referenceReport[1:2], stdout, "С флагом --keep-going корректные пакеты должны попасть в отчёт")
}
